// Package redactor implements the substitution rules used by metascrub.
// Each built-in category contributes an ordered list of compiled patterns;
// custom patterns are loaded from a line-delimited file and applied last.
package redactor
