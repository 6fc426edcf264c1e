package parser

import "strings"

// IsSuggestionRequest reports whether the query asks the assistant to invent
// something ("suggest me tasks", "give me ideas") rather than look it up.
func IsSuggestionRequest(query string) bool {
	for _, re := range reg.suggestion {
		if re.MatchString(query) {
			return true
		}
	}
	return false
}

// IsCommandQuery reports whether the query is an imperative that acts on an
// entity ("create a task", "schedule a meeting").
func IsCommandQuery(query string) bool {
	q := strings.TrimSpace(query)
	for _, re := range reg.command {
		if re.MatchString(q) {
			return true
		}
	}
	return false
}
