package parser

import (
	"regexp"
	"strings"

	"workspace-assistant/internal/model"
	"workspace-assistant/pkg/datemath"
)

// Category selects one of the registry's keyword sets.
type Category int

const (
	CategoryCalendar Category = iota
	CategoryMeeting
	CategoryTask
	CategoryTaskQuery
	CategoryProject
	CategoryProgress
	CategoryTimeline
	CategoryFile
	CategoryNote
)

// projectPattern is one entry of the ordered project-name extraction table.
// typeGroup is 0 when the pattern has no item-type capture.
type projectPattern struct {
	re        *regexp.Regexp
	nameGroup int
	typeGroup int
}

type statusKeywords struct {
	status   string
	keywords []string
}

type registry struct {
	keywords        map[Category][]string
	statuses        []statusKeywords
	projectStatuses []statusKeywords
	stopWords       map[string]struct{}
	genericNouns    map[string]struct{}
	questionWords   map[string]struct{}
	prepositions    map[string]struct{}
	fullMonthNames  []string
	projectPatterns []projectPattern
	suggestion      []*regexp.Regexp
	command         []*regexp.Regexp
}

// reg is built once at init and never mutated.
var reg = newRegistry()

const (
	itemTypeAlt = `(tasks?|events?|notes?|files?|items?)`
	prepAlt     = `(?:in|for|from|of|on|under|within)`
	// Up to four words; quotes around the name are tolerated.
	nameCapture = `["']?([\p{L}\p{N}][\p{L}\p{N}.&'_-]*(?:\s+[\p{L}\p{N}][\p{L}\p{N}.&'_-]*){0,3}?)["']?`
	endOfClause = `\s*(?:[?.!,]|$)`
)

func newRegistry() *registry {
	return &registry{
		keywords: map[Category][]string{
			CategoryCalendar: {"calendar", "event", "events", "schedule", "scheduled", "appointment", "appointments", "agenda"},
			CategoryMeeting:  {"meeting", "meetings", "call", "calls", "standup", "standups", "stand-up"},
			CategoryTask: {
				"task", "tasks", "todo", "todos", "to-do", "to-dos", "to do",
				"assignment", "assignments", "deadline", "deadlines", "chore", "chores",
			},
			CategoryTaskQuery: {
				"due", "overdue", "pending", "outstanding", "what do i need to do", "what do i have to do",
				"on my plate", "need to finish", "need to do",
			},
			CategoryProject:  {"project", "projects"},
			CategoryProgress: {"progress", "status", "how far", "completion", "percent", "percentage", "how is", "how's", "going"},
			CategoryTimeline: {"timeline", "roadmap", "milestone", "milestones", "coming up", "deadlines", "gantt"},
			CategoryFile: {
				"file", "files", "document", "documents", "doc", "docs", "pdf", "pdfs",
				"image", "images", "photo", "photos", "picture", "pictures", "video", "videos",
				"attachment", "attachments", "upload", "uploads", "uploaded",
			},
			CategoryNote: {"note", "notes", "memo", "memos", "jotted", "wrote down"},
		},
		statuses: []statusKeywords{
			{status: model.TaskStatusTodo, keywords: []string{"todo", "to-do", "not started", "pending", "open"}},
			{status: model.TaskStatusInProgress, keywords: []string{"in progress", "in-progress", "ongoing", "working on", "started", "doing"}},
			{status: model.TaskStatusDone, keywords: []string{"done", "completed", "finished", "complete", "closed"}},
		},
		projectStatuses: []statusKeywords{
			{status: model.ProjectStatusActive, keywords: []string{"active", "current", "ongoing", "in progress"}},
			{status: model.ProjectStatusCompleted, keywords: []string{"completed", "finished", "done"}},
			{status: model.ProjectStatusOnHold, keywords: []string{"on hold", "on-hold", "paused"}},
		},
		stopWords: set("my", "the", "a", "an", "this", "that", "these", "those", "all", "some", "any"),
		genericNouns: set(
			"tasks", "task", "items", "item", "events", "event", "notes", "note", "files", "file",
			"work", "working", "do", "have", "get", "show", "list",
		),
		questionWords: set(
			"what", "which", "how", "when", "where", "who", "why", "tell", "show", "list",
			"get", "give", "suggest", "generate", "create",
		),
		prepositions: set("in", "for", "from", "of", "on", "under", "within", "about", "with"),
		fullMonthNames: []string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		projectPatterns: []projectPattern{
			// "tasks in the Apollo project"
			{re: regexp.MustCompile(`(?i)\b` + itemTypeAlt + `\s+` + prepAlt + `\s+(?:the\s+)?` + nameCapture + `\s+project\b`), nameGroup: 2, typeGroup: 1},
			// "tasks in project Apollo"
			{re: regexp.MustCompile(`(?i)\b` + itemTypeAlt + `\s+` + prepAlt + `\s+project\s+` + nameCapture + endOfClause), nameGroup: 2, typeGroup: 1},
			// "project called Apollo"
			{re: regexp.MustCompile(`(?i)\bproject\s+(?:called|named|titled)\s+` + nameCapture + endOfClause), nameGroup: 1},
			// "progress on the Apollo project", "for the Apollo project's files"
			{re: regexp.MustCompile(`(?i)\b(?:in|for|from|of|on|about|under|within)\s+(?:the\s+)?` + nameCapture + `\s+project\b(?:'s)?(?:\s+` + itemTypeAlt + `\b)?`), nameGroup: 1, typeGroup: 2},
			// "Apollo project tasks", "the Apollo project's notes"
			{re: regexp.MustCompile(`(?i)(?:^|\b(?:the|my|our)\s+)` + nameCapture + `\s+project(?:'s)?\s+` + itemTypeAlt + `\b`), nameGroup: 1, typeGroup: 2},
			// "how is the Apollo project going"
			{re: regexp.MustCompile(`(?i)\b([\p{L}\p{N}][\p{L}\p{N}.&_-]*)\s+project\b`), nameGroup: 1},
		},
		suggestion: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:suggest|recommend|propose|brainstorm)\b.*\b(?:tasks?|events?|projects?|notes?|ideas?|reminders?|meetings?|something|anything|things)\b`),
			regexp.MustCompile(`(?i)\b(?:generate|come up with)\s+(?:me\s+)?(?:some\s+|a few\s+|a list of\s+|new\s+)*(?:tasks?|events?|ideas?|projects?|notes?)\b`),
			regexp.MustCompile(`(?i)\bgive\s+me\s+(?:some\s+|a few\s+)?(?:suggestions?|ideas?|recommendations?)\b`),
			regexp.MustCompile(`(?i)\b(?:any|some)\s+(?:suggestions?|ideas?|recommendations?)\b`),
			regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:suggest|recommend)\b`),
		},
		command: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(?:please\s+)?(?:(?:can|could|would)\s+you\s+)?(?:create|add|delete|remove|update|edit|schedule|set up|cancel|rename|move|mark)\s+(?:\S+\s+){0,4}?(?:tasks?|events?|projects?|reminders?|meetings?|notes?)\b`),
			regexp.MustCompile(`(?i)\b(?:create|add|delete|remove|update|schedule)\s+(?:a|an|the|new|my)\s+(?:new\s+)?(?:tasks?|events?|projects?|reminders?|meetings?|notes?)\b`),
			regexp.MustCompile(`(?i)\b(?:suggest|generate|recommend)\s+(?:\w+\s+)?(?:tasks?|events?|projects?|reminders?)\b`),
		},
	}
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Has reports whether the query mentions any keyword of category c.
// Matching is case-insensitive and respects word boundaries.
func Has(query string, c Category) bool {
	return containsAnyWord(strings.ToLower(query), reg.keywords[c])
}

// Keywords returns a copy of the keyword set for category c.
func Keywords(c Category) []string {
	return append([]string(nil), reg.keywords[c]...)
}

// InferTaskStatus returns the first status whose keywords appear in the query,
// checked todo, then in progress, then done. Empty when none match.
func InferTaskStatus(query string) string {
	return inferStatus(query, reg.statuses)
}

func inferStatus(query string, table []statusKeywords) string {
	lower := strings.ToLower(query)
	for _, s := range table {
		if containsAnyWord(lower, s.keywords) {
			return s.status
		}
	}
	return ""
}

// InferProjectStatus is InferTaskStatus for project listings.
func InferProjectStatus(query string) string {
	return inferStatus(query, reg.projectStatuses)
}

func isPreposition(word string) bool {
	_, ok := reg.prepositions[strings.ToLower(word)]
	return ok
}

// IsStopWord reports membership in the stop-word list.
func IsStopWord(word string) bool {
	_, ok := reg.stopWords[strings.ToLower(word)]
	return ok
}

// MonthIndex maps a full or abbreviated month name to its zero-based index.
func MonthIndex(token string) (int, bool) {
	m, ok := datemath.LookupMonth(token)
	if !ok {
		return 0, false
	}
	return int(m) - 1, true
}

// MonthDisplayName maps a month token to its display name, e.g. "sept" → "September".
func MonthDisplayName(token string) string {
	m, ok := datemath.LookupMonth(token)
	if !ok {
		return token
	}
	return m.String()
}

// containsAnyWord reports whether any phrase occurs in text bounded by
// non-alphanumeric characters. text must already be lower-cased.
func containsAnyWord(text string, phrases []string) bool {
	for _, p := range phrases {
		if containsWord(text, p) {
			return true
		}
	}
	return false
}

func containsWord(text, phrase string) bool {
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if (i == 0 || !isWordByte(text[i-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_' || b >= 0x80
}
