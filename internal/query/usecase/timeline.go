package usecase

import (
	"context"
	"errors"
	"fmt"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/repository"
)

func (uc *implUseCase) handleProjectTimeline(ctx context.Context, r request) (string, bool) {
	name := r.project.ProjectName
	days := extractTimelineDays(r.text)
	if days == 0 {
		days = uc.timelineDays
	}

	tl, err := uc.repo.GetProjectTimeline(ctx, repository.GetProjectTimelineOptions{
		UserID:     r.userID,
		ProjectRef: name,
		Days:       days,
	})
	if errors.Is(err, repository.ErrProjectNotFound) {
		return fmt.Sprintf("I couldn't find a project matching %q.", name), true
	}
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleProjectTimeline: user=%s project=%q: %v", r.userID, name, err)
		return fmt.Sprintf(apologyTimeline, name), true
	}

	if len(tl.Items) == 0 {
		return fmt.Sprintf("Nothing is scheduled for the %q project in the next %d days.", tl.Project.Name, tl.Days), true
	}

	lines := make([]string, 0, len(tl.Items))
	for _, it := range tl.Items {
		lines = append(lines, uc.formatTimelineItem(it))
	}
	header := fmt.Sprintf("🗓️ Timeline for **%s** (next %d days):", tl.Project.Name, tl.Days)
	return render(header, bulleted(uc.capLines(lines))), true
}

func (uc *implUseCase) formatTimelineItem(it model.TimelineItem) string {
	when := uc.dateMath.FormatDate(it.Date)
	switch it.Kind {
	case model.TimelineKindEvent:
		return fmt.Sprintf("%s, %s: Event: %s", when, uc.dateMath.FormatTime(it.Date), it.Title)
	case model.TimelineKindDeadline:
		return fmt.Sprintf("%s: 🏁 Project deadline", when)
	}

	line := fmt.Sprintf("%s: %s Task: %s", when, statusMarker(it.Status), it.Title)
	if it.Overdue {
		line += " " + markerOverdue + " overdue"
	}
	return line
}
