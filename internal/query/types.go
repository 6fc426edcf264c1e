package query

// Intent names the dispatch branch that produced an answer.
type Intent string

const (
	IntentTimeReferenced  Intent = "TIME_REFERENCED"
	IntentProjectItems    Intent = "PROJECT_ITEMS"
	IntentProjectList     Intent = "PROJECT_LIST"
	IntentCalendar        Intent = "CALENDAR"
	IntentNotes           Intent = "NOTES"
	IntentProjectProgress Intent = "PROJECT_PROGRESS"
	IntentProjectTimeline Intent = "PROJECT_TIMELINE"
	IntentFiles           Intent = "FILES"
	IntentEvents          Intent = "EVENTS"
	IntentTasks           Intent = "TASKS"
	IntentNone            Intent = "NONE"
)

// AnswerInput is the input for answering a user-data question.
type AnswerInput struct {
	Query string
}

// AnswerOutput is the rendered answer. Handled is false when no intent
// matched and the caller should fall through to free-form chat.
type AnswerOutput struct {
	Answer  string
	Handled bool
	Intent  Intent
}
