package redactor

// Config selects which built-in categories run and where custom patterns
// come from. It is built once per invocation and passed by value; there is
// no mutable package state.
type Config struct {
	Timestamps  bool
	Filepaths   bool
	ServerNames bool
	// CustomPatterns is the path to a line-delimited pattern file, one
	// regular expression per non-blank line. Empty means none.
	CustomPatterns string
	// DryRun suppresses all filesystem writes downstream. The redactor
	// itself never writes; the flag travels with the config so every
	// component sees the same value.
	DryRun bool
}

// Category names in application order.
const (
	CategoryTimestamp  = "timestamp"
	CategoryFilepath   = "filepath"
	CategoryServerName = "servername"
	CategoryCustom     = "custom"
)

// Rules returns the ordered rule list for cfg: timestamps, filepaths,
// server names, then custom patterns in file order. The order is fixed;
// enabling a category never reorders another.
func Rules(cfg Config) ([]Rule, error) {
	var rules []Rule
	if cfg.Timestamps {
		rules = append(rules, timestampRules...)
	}
	if cfg.Filepaths {
		rules = append(rules, filepathRules...)
	}
	if cfg.ServerNames {
		rules = append(rules, serverNameRules...)
	}
	if cfg.CustomPatterns != "" {
		custom, err := loadCustomRules(cfg.CustomPatterns)
		if err != nil {
			return nil, err
		}
		rules = append(rules, custom...)
	}
	return rules, nil
}

// Apply runs every rule against text in order, replacing all non-overlapping
// matches with the empty string. Each rule sees the output of the previous
// one, not the original text. Pure function, no I/O.
func Apply(text string, rules []Rule) string {
	out := text
	for _, r := range rules {
		out = r.Pattern.ReplaceAllString(out, "")
	}
	return out
}

// Builtin returns every built-in rule in application order, for display.
func Builtin() []Rule {
	out := make([]Rule, 0, len(timestampRules)+len(filepathRules)+len(serverNameRules))
	out = append(out, timestampRules...)
	out = append(out, filepathRules...)
	out = append(out, serverNameRules...)
	return out
}
