package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-assistant/internal/query"
	"workspace-assistant/internal/query/parser"
	"workspace-assistant/internal/query/repository"
)

// handleTimeReferenced answers "what's due this week" and "meetings tomorrow".
// Queries naming both tasks and events get both sections.
func (uc *implUseCase) handleTimeReferenced(ctx context.Context, r request) (string, bool) {
	wantTasks, wantEvents := isTaskQuery(r), isEventQuery(r)

	var sections []string
	if wantTasks {
		sections = append(sections, uc.timeReferencedTasks(ctx, r))
	}
	if wantEvents {
		sections = append(sections, uc.timeReferencedEvents(ctx, r))
	}
	return strings.Join(sections, "\n\n"), true
}

func (uc *implUseCase) timeReferencedTasks(ctx context.Context, r request) string {
	status := parser.InferTaskStatus(r.text)
	opt := repository.ListTasksOptions{
		UserID:  r.userID,
		Status:  status,
		DueDate: r.dates.TargetDate,
		Filters: append([]string(nil), r.dates.DateFilters...),
	}

	overdue := r.mentions("overdue")
	period := uc.describePeriod(r)
	switch {
	case overdue:
		opt.Filters = append(opt.Filters, query.FilterOverdue)
	case r.dates.IsZero():
		opt.Filters = append(opt.Filters, query.FilterUpcoming)
	}
	if r.project.Found() {
		opt.Filters = append(opt.Filters, query.ProjectFilter(r.project.ProjectName))
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.timeReferencedTasks: user=%s: %v", r.userID, err)
		return apologyTasks
	}

	var phrase string
	switch {
	case overdue && period == "":
		phrase = "that are overdue"
	case overdue:
		phrase = "overdue " + period
	case period == "":
		phrase = "coming up"
	default:
		phrase = "due " + period
	}

	label := statusLabel(status)
	if len(tasks) == 0 {
		return fmt.Sprintf("You don't have any %stasks %s.", label, phrase)
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, uc.formatTask(t, r.now))
	}
	return render(fmt.Sprintf("Here are your %stasks %s:", label, phrase), bulleted(uc.capLines(lines)))
}

func (uc *implUseCase) timeReferencedEvents(ctx context.Context, r request) string {
	opt := repository.ListEventsOptions{UserID: r.userID}
	switch {
	case r.dates.TargetDate != "":
		opt.StartDate, opt.EndDate = r.dates.TargetDate, r.dates.TargetDate
	case r.dates.HasRange():
		opt.StartDate, opt.EndDate = r.dates.StartDate, r.dates.EndDate
	}

	past := r.mentions("past")
	if !r.dates.IsMonthRange() {
		if past {
			opt.Filters = append(opt.Filters, query.FilterPast)
		} else {
			opt.Filters = append(opt.Filters, query.FilterUpcoming)
		}
	}
	if r.project.Found() {
		opt.Filters = append(opt.Filters, query.ProjectFilter(r.project.ProjectName))
	}

	events, err := uc.repo.ListEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.timeReferencedEvents: user=%s: %v", r.userID, err)
		return apologyEvents
	}

	kind := "events"
	if past && !r.dates.IsMonthRange() {
		kind = "past events"
	}
	period := uc.describePeriod(r)
	if period == "" {
		period = "coming up"
	}

	if len(events) == 0 {
		return fmt.Sprintf("You don't have any %s %s.", kind, period)
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, uc.formatEvent(e))
	}
	return render(fmt.Sprintf("Here are your %s %s:", kind, period), bulleted(uc.capLines(lines)))
}
