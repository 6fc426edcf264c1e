package calendarsync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"workspace-assistant/internal/query/repository"
	"workspace-assistant/pkg/gcalendar"
)

// Sync lists the calendar window and upserts every event for the user.
// Events are keyed by their calendar id, so re-running refreshes rows in
// place. A single failed upsert is counted and skipped.
func (uc *implUseCase) Sync(ctx context.Context, input SyncInput) (SyncOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return SyncOutput{}, ErrMissingUser
	}

	from := input.From
	if from.IsZero() {
		from = uc.dateMath.StartOfDay(uc.now())
	}
	days := input.Days
	if days <= 0 {
		days = DefaultDays
	}
	to := uc.dateMath.EndOfDay(uc.dateMath.StartOfDay(from.AddDate(0, 0, days)))

	events, err := uc.fetchWithRetry(ctx, gcalendar.ListEventsRequest{
		CalendarID: input.CalendarID,
		TimeMin:    from,
		TimeMax:    to,
		Location:   uc.dateMath.Location(),
	})
	if err != nil {
		return SyncOutput{}, err
	}

	out := SyncOutput{Fetched: len(events)}
	for _, ev := range events {
		if _, err := uc.writer.UpsertEvent(ctx, toUpsertOptions(input.UserID, ev)); err != nil {
			uc.l.Warnf(ctx, "calendarsync.Sync: upsert %s: %v", ev.ID, err)
			out.Failed++
			continue
		}
		out.Upserted++
	}

	uc.l.Infof(ctx, "calendarsync.Sync: user=%s window=%s..%s fetched=%d upserted=%d failed=%d",
		input.UserID, uc.dateMath.ISO(from), uc.dateMath.ISO(to), out.Fetched, out.Upserted, out.Failed)
	return out, nil
}

// fetchWithRetry lists events with exponential backoff.
func (uc *implUseCase) fetchWithRetry(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	backoff := uc.backoff

	var lastErr error
	for i := 0; i < uc.maxRetries; i++ {
		events, err := uc.source.ListEvents(ctx, req)
		if err == nil {
			return events, nil
		}
		lastErr = err
		uc.l.Warnf(ctx, "calendarsync.fetch: attempt %d/%d failed: %v", i+1, uc.maxRetries, err)

		if i == uc.maxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, fmt.Errorf("%w: %v", ErrFetchFailed, lastErr)
}

func toUpsertOptions(userID string, ev gcalendar.Event) repository.UpsertEventOptions {
	title := strings.TrimSpace(ev.Summary)
	if title == "" {
		title = untitledEvent
	}
	end := ev.EndTime
	if end.IsZero() || end.Before(ev.StartTime) {
		end = ev.StartTime
	}

	return repository.UpsertEventOptions{
		ID:          ulid.Make().String(),
		UserID:      userID,
		Title:       title,
		Description: ev.Description,
		Location:    ev.Location,
		StartTime:   ev.StartTime,
		EndTime:     end,
		AllDay:      ev.AllDay,
		ExternalID:  externalIDPrefix + ev.ID,
	}
}
