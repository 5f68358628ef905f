package redactor

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrPatternSourceNotFound reports a missing custom pattern file.
var ErrPatternSourceNotFound = errors.New("custom pattern file not found")

// InvalidPatternError reports a custom pattern that does not compile. The
// run aborts on the first bad pattern; none are skipped.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid custom pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }
