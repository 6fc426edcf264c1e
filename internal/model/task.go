package model

import "time"

// Task statuses as stored.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task is a single to-do item owned by a user, optionally inside a project.
type Task struct {
	ID          string
	UserID      string
	ProjectID   string
	ProjectName string // Joined from projects; empty when the task has no project
	Title       string
	Description string
	Status      string
	Priority    string // "low", "medium", "high"
	DueDate     string // YYYY-MM-DD, empty when unset
	Labels      []string
	CreatedAt   time.Time
}

// HasDueDate reports whether the task carries a deadline.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}
