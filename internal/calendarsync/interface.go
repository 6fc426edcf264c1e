package calendarsync

import (
	"context"

	"workspace-assistant/pkg/gcalendar"
)

// Source lists events from an external calendar.
type Source interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// UseCase imports external calendar events into a user's workspace.
type UseCase interface {
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
}
