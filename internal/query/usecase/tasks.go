package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query"
	"workspace-assistant/internal/query/parser"
	"workspace-assistant/internal/query/repository"
)

// handleTasks is the task fallback. A project phrase is sent to the data
// layer and also applied to the result by name.
func (uc *implUseCase) handleTasks(ctx context.Context, r request) (string, bool) {
	status := parser.InferTaskStatus(r.text)
	opt := repository.ListTasksOptions{
		UserID:  r.userID,
		Status:  status,
		DueDate: r.dates.TargetDate,
		Query:   extractSearchTerm(r.text),
		Filters: append([]string(nil), r.dates.DateFilters...),
	}

	if r.mentions("overdue") {
		opt.Filters = append(opt.Filters, query.FilterOverdue)
	} else if r.mentions("upcoming") {
		opt.Filters = append(opt.Filters, query.FilterUpcoming)
	}
	priority := extractPriority(r.text)
	if priority != "" {
		opt.Filters = append(opt.Filters, query.PriorityFilter(priority))
	}
	project := extractProjectPhrase(r.text)
	if project == "" && r.project.Found() {
		project = r.project.ProjectName
	}
	if project != "" {
		opt.Filters = append(opt.Filters, query.ProjectFilter(project))
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "dispatch.handleTasks: user=%s: %v", r.userID, err)
		return apologyTasks, true
	}
	if project != "" {
		tasks = filterByProject(tasks, project)
	}

	desc := statusLabel(status) + "tasks"
	if priority != "" {
		desc = priority + "-priority " + desc
	}
	if r.mentions("overdue") {
		desc = "overdue " + desc
	}
	if opt.Query != "" {
		desc += fmt.Sprintf(" about %q", opt.Query)
	}
	if project != "" {
		desc += fmt.Sprintf(" in the %q project", project)
	}

	if len(tasks) == 0 {
		return fmt.Sprintf("You don't have any %s.", desc), true
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, uc.formatTask(t, r.now))
	}
	return render(fmt.Sprintf("Here are your %s:", desc), numbered(uc.capLines(lines))), true
}

func filterByProject(tasks []model.Task, project string) []model.Task {
	needle := strings.ToLower(project)
	kept := tasks[:0:0]
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.ProjectName), needle) {
			kept = append(kept, t)
		}
	}
	return kept
}
