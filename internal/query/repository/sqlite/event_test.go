package sqlite_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/repository"
)

func TestListEvents(t *testing.T) {
	store := newStore(t)
	eventID := func(e model.Event) string { return e.ID }

	tests := []struct {
		name string
		opt  repository.ListEventsOptions
		want []string
	}{
		{name: "upcoming", opt: repository.ListEventsOptions{UserID: "u1", Filters: []string{"upcoming"}}, want: []string{"e1", "e3"}},
		{name: "past newest first", opt: repository.ListEventsOptions{UserID: "u1", Filters: []string{"past"}}, want: []string{"e4", "e2"}},
		{name: "single day", opt: repository.ListEventsOptions{UserID: "u1", StartDate: "2026-10-22", EndDate: "2026-10-22"}, want: []string{"e1"}},
		{name: "month", opt: repository.ListEventsOptions{UserID: "u1", Filters: []string{"month:november"}}, want: []string{"e3"}},
		{name: "project", opt: repository.ListEventsOptions{UserID: "u1", Filters: []string{"project:website"}}, want: []string{"e3"}},
		{name: "other user", opt: repository.ListEventsOptions{UserID: "u2"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ListEvents(context.Background(), tt.opt)
			if err != nil {
				t.Fatalf("ListEvents() error = %v", err)
			}
			if gotIDs := ids(got, eventID); !reflect.DeepEqual(gotIDs, tt.want) {
				t.Errorf("ListEvents() = %v, want %v", gotIDs, tt.want)
			}
		})
	}
}

func TestUpsertEvent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	start := time.Date(2026, 10, 27, 9, 0, 0, 0, time.UTC)

	first, err := store.UpsertEvent(ctx, repository.UpsertEventOptions{
		ID: "e5", UserID: "u1", Title: "Standup", StartTime: start, EndTime: start.Add(15 * time.Minute), ExternalID: "g-1",
	})
	if err != nil {
		t.Fatalf("UpsertEvent() error = %v", err)
	}
	second, err := store.UpsertEvent(ctx, repository.UpsertEventOptions{
		ID: "e6", UserID: "u1", Title: "Daily standup", StartTime: start, EndTime: start.Add(30 * time.Minute), ExternalID: "g-1",
	})
	if err != nil {
		t.Fatalf("UpsertEvent() error = %v", err)
	}
	if first.ID != "e5" || second.ID != "e5" {
		t.Errorf("ids = %q, %q, want both e5", first.ID, second.ID)
	}

	got, err := store.ListEvents(ctx, repository.ListEventsOptions{UserID: "u1", Query: "standup"})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Daily standup" || !got[0].EndTime.Equal(start.Add(30*time.Minute)) {
		t.Errorf("events = %+v", got)
	}
}
