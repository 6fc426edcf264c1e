package model

import "time"

// Event is a calendar entry.
type Event struct {
	ID          string
	UserID      string
	ProjectID   string
	ProjectName string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	ExternalID  string // Source calendar id for imported events
}
