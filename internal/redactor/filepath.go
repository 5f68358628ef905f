package redactor

import "regexp"

var filepathRules = []Rule{
	// Windows drive-letter paths with backslash-delimited segments.
	{Category: CategoryFilepath, Pattern: regexp.MustCompile(`[a-zA-Z]:\\(?:[^\\\n]+\\)*[^\\\n]+`)},
	// Slash-delimited tokens. Deliberately broad: this also strips URL
	// paths and any other slash-joined token, which is the documented
	// contract, not something to narrow.
	{Category: CategoryFilepath, Pattern: regexp.MustCompile(`/([^/]+/)*[^/]+`)},
}
