package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/parser"
	"workspace-assistant/internal/query/repository"
)

func (uc *implUseCase) handleProjectList(ctx context.Context, r request) (string, bool) {
	status := parser.InferProjectStatus(r.text)
	projects, err := uc.repo.ListProjects(ctx, repository.ListProjectsOptions{UserID: r.userID, Status: status})
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleProjectList: user=%s: %v", r.userID, err)
		return apologyProjects, true
	}

	label := projectStatusLabel(status)
	if len(projects) == 0 {
		return fmt.Sprintf("You don't have any %sprojects.", label), true
	}

	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, uc.formatProject(p))
	}
	return render(fmt.Sprintf("Here are your %sprojects:", label), numbered(uc.capLines(lines))), true
}

func (uc *implUseCase) formatProject(p model.Project) string {
	parts := []string{fmt.Sprintf("**%s** (%s)", p.Name, strings.ReplaceAll(p.Status, "_", " "))}
	if p.DueDate != "" {
		parts = append(parts, "due "+uc.formatISODate(p.DueDate))
	}
	parts = append(parts, fmt.Sprintf("%d%% complete", p.Progress))
	return strings.Join(parts, " · ")
}

func projectStatusLabel(status string) string {
	switch status {
	case model.ProjectStatusActive:
		return "active "
	case model.ProjectStatusCompleted:
		return "completed "
	case model.ProjectStatusOnHold:
		return "on-hold "
	default:
		return ""
	}
}
