package redactor

import "regexp"

var timestampRules = []Rule{
	{Category: CategoryTimestamp, Pattern: regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)},
	// Bare runs of 10+ digits cover Unix epoch seconds and millis.
	{Category: CategoryTimestamp, Pattern: regexp.MustCompile(`\b\d{10,}\b`)},
}
