package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/repository"
)

func (uc *implUseCase) handleProjectProgress(ctx context.Context, r request) (string, bool) {
	name := r.project.ProjectName
	p, err := uc.repo.GetProjectProgress(ctx, repository.GetProjectOptions{UserID: r.userID, ProjectRef: name})
	if errors.Is(err, repository.ErrProjectNotFound) {
		return fmt.Sprintf("I couldn't find a project matching %q.", name), true
	}
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleProjectProgress: user=%s project=%q: %v", r.userID, name, err)
		return fmt.Sprintf(apologyProgress, name), true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **%s** is %d%% complete.\n", p.Project.Name, p.Percentage)
	fmt.Fprintf(&b, "- Tasks: %d of %d done, %d pending", p.CompletedTasks, p.TotalTasks, p.PendingTasks)
	if p.OverdueTasks > 0 {
		fmt.Fprintf(&b, ", %s %d overdue", markerOverdue, p.OverdueTasks)
	}
	fmt.Fprintf(&b, "\n- Upcoming events (next %d days): %d", repository.DefaultTimelineDays, p.UpcomingEvents)
	fmt.Fprintf(&b, "\n- Notes: %d, Files: %d", p.NoteCount, p.FileCount)
	fmt.Fprintf(&b, "\n- Deadline: %s", uc.deadlineStatus(p.Project, r))
	return b.String(), true
}

// deadlineStatus describes the project due date relative to today.
func (uc *implUseCase) deadlineStatus(p model.Project, r request) string {
	if p.DueDate == "" {
		return "no deadline set"
	}
	due, err := uc.dateMath.ParseISO(p.DueDate)
	if err != nil {
		return p.DueDate
	}

	date := uc.dateMath.FormatDate(due)
	days := uc.dateMath.DaysBetween(r.now, due)
	switch {
	case p.Status == model.ProjectStatusCompleted:
		return date + " (completed)"
	case days == 0:
		return date + " (due today)"
	case days == 1:
		return date + " (due tomorrow)"
	case days > 1:
		return fmt.Sprintf("%s (%d days left)", date, days)
	case days == -1:
		return fmt.Sprintf("%s %s (overdue by 1 day)", date, markerOverdue)
	default:
		return fmt.Sprintf("%s %s (overdue by %d days)", date, markerOverdue, -days)
	}
}
