package repository

import (
	"context"

	"workspace-assistant/internal/model"
)

// Repository is the read-only data facade the dispatcher answers from.
// Every method is scoped to one user.
type Repository interface {
	TaskRepository
	EventRepository
	ProjectRepository
	NoteRepository
	FileRepository
}

// TaskRepository reads tasks.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

// EventRepository reads calendar events.
type EventRepository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
}

// ProjectRepository reads projects and project-wide aggregates. Methods taking
// a ProjectRef resolve it fuzzily and return ErrProjectNotFound when nothing matches.
type ProjectRepository interface {
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]model.Project, error)
	GetProjectItems(ctx context.Context, opt GetProjectOptions) (model.ProjectItems, error)
	GetProjectProgress(ctx context.Context, opt GetProjectOptions) (model.ProjectProgress, error)
	GetProjectTimeline(ctx context.Context, opt GetProjectTimelineOptions) (model.ProjectTimeline, error)
}

// NoteRepository reads notes.
type NoteRepository interface {
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]model.Note, error)
}

// FileRepository reads file metadata.
type FileRepository interface {
	ListFiles(ctx context.Context, opt ListFilesOptions) ([]model.File, error)
}

// Writer loads data into the store. Used by fixture seeding and calendar import.
type Writer interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	CreateFile(ctx context.Context, opt CreateFileOptions) (model.File, error)
	// UpsertEvent inserts the event, or updates the existing row with the same
	// user and non-empty ExternalID.
	UpsertEvent(ctx context.Context, opt UpsertEventOptions) (model.Event, error)
}

// Store is a Repository that can also be written to.
type Store interface {
	Repository
	Writer
}
