package model

import "time"

// Project statuses as stored.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
)

// Project groups tasks, events, notes and files.
type Project struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Status      string
	DueDate     string // YYYY-MM-DD, empty when unset
	Progress    int    // 0-100
	CreatedAt   time.Time
}

// ProjectItems is every item linked to one project.
type ProjectItems struct {
	Project Project
	Tasks   []Task
	Events  []Event
	Notes   []Note
	Files   []File
}

// IsEmpty reports whether the project has no items of any kind.
func (p ProjectItems) IsEmpty() bool {
	return len(p.Tasks) == 0 && len(p.Events) == 0 && len(p.Notes) == 0 && len(p.Files) == 0
}

// ProjectProgress aggregates completion counts for a project.
type ProjectProgress struct {
	Project        Project
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	OverdueTasks   int
	UpcomingEvents int // Events starting within the next 30 days
	NoteCount      int
	FileCount      int
	Percentage     int
}

// Timeline item kinds.
const (
	TimelineKindTask     = "task"
	TimelineKindEvent    = "event"
	TimelineKindDeadline = "project_deadline"
)

// TimelineItem is one dated entry in a project's merged timeline.
type TimelineItem struct {
	Date    time.Time
	Kind    string
	Title   string
	Status  string
	Overdue bool
}

// ProjectTimeline is a project's dated items over a look-ahead window,
// sorted by date.
type ProjectTimeline struct {
	Project Project
	Days    int
	Items   []TimelineItem
}
