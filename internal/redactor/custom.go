package redactor

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// loadCustomRules reads one regular expression per non-blank line, trimmed,
// in file order.
func loadCustomRules(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%s: %w", path, ErrPatternSourceNotFound)
		}
		return nil, errors.Errorf("opening custom pattern file %s: %w", path, err)
	}
	defer f.Close()

	var rules []Rule
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rx, err := regexp.Compile(line)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: line, Err: err}
		}
		rules = append(rules, Rule{Category: CategoryCustom, Pattern: rx})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Errorf("reading custom pattern file %s: %w", path, err)
	}
	return rules, nil
}
