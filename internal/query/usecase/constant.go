package usecase

// Apologies returned when a data lookup fails. Project-scoped ones take the
// project name.
const (
	apologyTasks    = "I couldn't retrieve your tasks right now. Please try again later."
	apologyEvents   = "I couldn't retrieve your events right now. Please try again later."
	apologyProjects = "I couldn't retrieve your projects right now. Please try again later."
	apologyNotes    = "I couldn't retrieve your notes right now. Please try again later."
	apologyFiles    = "I couldn't retrieve your files right now. Please try again later."
	apologyItems    = "I couldn't retrieve items for the %q project. Please try again later."
	apologyProgress = "I couldn't retrieve progress for the %q project. Please try again later."
	apologyTimeline = "I couldn't retrieve the timeline for the %q project. Please try again later."
)

const (
	noteTruncateChars = 200
	eventWindowDays   = 30
)

// Task markers.
const (
	markerTodo       = "⬜"
	markerInProgress = "🔄"
	markerDone       = "✅"
	markerOverdue    = "⚠️"
	markerPinned     = "📌"

	markerHigh   = "🔴"
	markerMedium = "🟡"
	markerLow    = "🟢"
)
