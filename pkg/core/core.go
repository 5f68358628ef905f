package core

import (
	"github.com/metascrub/metascrub/internal/redactor"
	"github.com/metascrub/metascrub/internal/types"
	"github.com/metascrub/metascrub/internal/walker"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = walker.Config
type RedactConfig = redactor.Config
type Result = types.Result
type Outcome = types.Outcome

// Run is the stable entrypoint for other programs: it mirrors src onto dst
// applying the configured redactions.
func Run(src, dst string, cfg Config) (Result, error) {
	w, err := walker.New(cfg)
	if err != nil {
		return Result{}, err
	}
	return w.Run(src, dst)
}

// Redact applies the configured rules to a string in memory, without
// touching the filesystem (other than reading custom patterns, if set).
func Redact(text string, cfg RedactConfig) (string, error) {
	rules, err := redactor.Rules(cfg)
	if err != nil {
		return "", err
	}
	return redactor.Apply(text, rules), nil
}
