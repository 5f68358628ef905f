package redactor

import "regexp"

var serverNameRules = []Rule{
	// Dotted hostnames under the common gTLDs only.
	{Category: CategoryServerName, Pattern: regexp.MustCompile(`\b[a-zA-Z0-9.-]+\.(com|net|org)\b`)},
	// IPv4 dotted quads, syntactic only; octets above 255 still match.
	{Category: CategoryServerName, Pattern: regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)},
}
