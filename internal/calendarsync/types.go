package calendarsync

import "time"

// SyncInput selects whose events to import and over which window.
type SyncInput struct {
	UserID     string
	CalendarID string
	// From defaults to the start of today; Days defaults to DefaultDays.
	From time.Time
	Days int
}

// SyncOutput summarises one import run.
type SyncOutput struct {
	Fetched  int
	Upserted int
	Failed   int
}
