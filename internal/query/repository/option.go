package repository

import "time"

// ListTasksOptions filters tasks. Filters holds opaque filter tokens
// (due_after:, due_before:, upcoming, overdue, priority:, project:).
type ListTasksOptions struct {
	UserID    string
	ProjectID string
	Status    string
	DueDate   string // YYYY-MM-DD
	Query     string // Substring of title or description
	Filters   []string
}

// ListEventsOptions filters events. StartDate and EndDate are inclusive local
// days applied to the event start. Filters: upcoming, past, month:, project:.
type ListEventsOptions struct {
	UserID    string
	ProjectID string
	StartDate string
	EndDate   string
	Query     string
	Filters   []string
}

// ListProjectsOptions filters projects.
type ListProjectsOptions struct {
	UserID string
	Status string
	Query  string // Substring of the project name
}

// ListNotesOptions filters notes.
type ListNotesOptions struct {
	UserID        string
	ProjectID     string
	ContentSearch string
	ProjectName   string
	PinnedOnly    bool
}

// ListFilesOptions filters file metadata.
type ListFilesOptions struct {
	UserID      string
	ProjectID   string
	NameSearch  string
	FileType    string
	ProjectName string
}

// GetProjectOptions addresses one project by id or fuzzy name.
type GetProjectOptions struct {
	UserID     string
	ProjectRef string
}

// GetProjectTimelineOptions addresses one project's timeline.
// Days <= 0 means DefaultTimelineDays.
type GetProjectTimelineOptions struct {
	UserID     string
	ProjectRef string
	Days       int
}

// DefaultTimelineDays is the look-ahead window for timelines and for counting
// upcoming events in progress reports.
const DefaultTimelineDays = 30

// CreateProjectOptions holds parameters for inserting a project.
type CreateProjectOptions struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Status      string
	DueDate     string
	Progress    int
	CreatedAt   time.Time
}

// CreateTaskOptions holds parameters for inserting a task.
type CreateTaskOptions struct {
	ID          string
	UserID      string
	ProjectID   string
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
	Labels      []string
	CreatedAt   time.Time
}

// UpsertEventOptions holds parameters for inserting or refreshing an event.
type UpsertEventOptions struct {
	ID          string
	UserID      string
	ProjectID   string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	ExternalID  string
}

// CreateNoteOptions holds parameters for inserting a note.
type CreateNoteOptions struct {
	ID        string
	UserID    string
	ProjectID string
	Title     string
	Content   string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateFileOptions holds parameters for inserting file metadata.
type CreateFileOptions struct {
	ID         string
	UserID     string
	Name       string
	FileType   string
	MimeType   string
	Size       int64
	UploadedAt time.Time
	ProjectID  string
	TaskID     string
	EventID    string
}
