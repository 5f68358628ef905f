package redactor

import "regexp"

// Rule is one substitution: a compiled pattern whose matches are replaced
// with the empty string.
type Rule struct {
	Category string
	Pattern  *regexp.Regexp
}
