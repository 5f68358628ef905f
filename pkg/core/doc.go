// Package core provides a small, stable facade over metascrub's internal
// walker and redactor for external integrations. It deliberately re-exports
// a narrow API surface so other tools can depend on a stable import path
// without reaching into internal packages.
//
// Example:
//
//	cfg := core.Config{Redact: core.RedactConfig{Timestamps: true}}
//	res, err := core.Run("in", "out", cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
