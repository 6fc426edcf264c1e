package usecase

import (
	"context"
	"fmt"

	"workspace-assistant/internal/query"
	"workspace-assistant/internal/query/repository"
)

// handleCalendar lists upcoming events, or past ones when asked.
func (uc *implUseCase) handleCalendar(ctx context.Context, r request) (string, bool) {
	filter, kind := query.FilterUpcoming, "upcoming events"
	if r.mentions("past") {
		filter, kind = query.FilterPast, "past events"
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{UserID: r.userID, Filters: []string{filter}})
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleCalendar: user=%s: %v", r.userID, err)
		return apologyEvents, true
	}
	if len(events) == 0 {
		return fmt.Sprintf("You don't have any %s.", kind), true
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, uc.formatEvent(e))
	}
	return render(fmt.Sprintf("Here are your %s:", kind), bulleted(uc.capLines(lines))), true
}

// eventWindow derives the listing window for meeting queries: a named day or
// week, else today plus the next eventWindowDays days.
func (uc *implUseCase) eventWindow(r request) (start, end, label string) {
	dm := uc.dateMath
	today := r.now
	switch {
	case r.mentions("today"):
		return dm.ISO(today), dm.ISO(today), "today"
	case r.mentions("tomorrow"):
		d := dm.ISO(today.AddDate(0, 0, 1))
		return d, d, "tomorrow"
	case r.mentions("this week"):
		mon, sun := dm.WeekBounds(today)
		return dm.ISO(mon), dm.ISO(sun), "this week"
	case r.mentions("next week"):
		mon, sun := dm.WeekBounds(today.AddDate(0, 0, 7))
		return dm.ISO(mon), dm.ISO(sun), "next week"
	}
	return dm.ISO(today), dm.ISO(today.AddDate(0, 0, eventWindowDays)), fmt.Sprintf("in the next %d days", eventWindowDays)
}

// handleEvents is the meeting fallback: a dated window filtered by the
// meeting word in the query.
func (uc *implUseCase) handleEvents(ctx context.Context, r request) (string, bool) {
	start, end, label := uc.eventWindow(r)
	meetingType := extractMeetingType(r.text)

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		UserID:    r.userID,
		StartDate: start,
		EndDate:   end,
		Query:     meetingType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleEvents: user=%s: %v", r.userID, err)
		return apologyEvents, true
	}

	noun := "meetings"
	if meetingType != "" && meetingType != "meeting" {
		noun = meetingType + "s"
	}
	if len(events) == 0 {
		return fmt.Sprintf("You don't have any %s scheduled %s.", noun, label), true
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, uc.formatEvent(e))
	}
	return render(fmt.Sprintf("Here are your %s %s:", noun, label), numbered(uc.capLines(lines))), true
}
