package parser

import "strings"

var timePhrases = []string{"this week", "next week", "today", "tomorrow", "yesterday", "due"}

// HasTimeReference reports whether the query talks about a point or span in
// time. It only orders dispatch and never produces filters of its own.
func HasTimeReference(query string, dr DateRange) bool {
	if !dr.IsZero() {
		return true
	}
	lower := strings.ToLower(query)
	for _, p := range timePhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, m := range reg.fullMonthNames {
		if containsWord(lower, m) {
			return true
		}
	}
	return false
}
