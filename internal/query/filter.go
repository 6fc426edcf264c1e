package query

// Filter tokens are opaque strings handed to the data layer. The dispatcher and
// extractors only build them; the repository interprets them.
const (
	FilterUpcoming = "upcoming"
	FilterPast     = "past"
	FilterOverdue  = "overdue"

	FilterPrefixDueAfter  = "due_after:"
	FilterPrefixDueBefore = "due_before:"
	FilterPrefixMonth     = "month:"
	FilterPrefixProject   = "project:"
	FilterPrefixPriority  = "priority:"
)

// DueAfter builds a "due_after:<date>" token.
func DueAfter(isoDate string) string { return FilterPrefixDueAfter + isoDate }

// DueBefore builds a "due_before:<date>" token.
func DueBefore(isoDate string) string { return FilterPrefixDueBefore + isoDate }

// MonthFilter builds a "month:<name>" token.
func MonthFilter(name string) string { return FilterPrefixMonth + name }

// ProjectFilter builds a "project:<name>" token.
func ProjectFilter(name string) string { return FilterPrefixProject + name }

// PriorityFilter builds a "priority:<level>" token.
func PriorityFilter(level string) string { return FilterPrefixPriority + level }
