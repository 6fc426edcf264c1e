package model

import "time"

// Note is a free-form text note.
type Note struct {
	ID          string
	UserID      string
	ProjectID   string
	ProjectName string
	Title       string
	Content     string
	Pinned      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
