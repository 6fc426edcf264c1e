package sqlite

import (
	"context"
	"strings"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query"
	repo "workspace-assistant/internal/query/repository"
)

// buildTaskQuery builds the WHERE clause + args for ListTasks.
// All non-empty fields and every recognised filter token are ANDed.
func (r *implRepository) buildTaskQuery(ctx context.Context, opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"t.user_id = ?"}
	args := []any{opt.UserID}

	if opt.ProjectID != "" {
		conditions = append(conditions, "t.project_id = ?")
		args = append(args, opt.ProjectID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "t.status = ?")
		args = append(args, opt.Status)
	}
	if opt.DueDate != "" {
		conditions = append(conditions, "t.due_date = ?")
		args = append(args, opt.DueDate)
	}
	if opt.Query != "" {
		conditions = append(conditions, "(LOWER(t.title) LIKE ? OR LOWER(t.description) LIKE ?)")
		args = append(args, like(opt.Query), like(opt.Query))
	}

	for _, f := range opt.Filters {
		switch {
		case strings.HasPrefix(f, query.FilterPrefixDueAfter):
			conditions = append(conditions, "t.due_date >= ?")
			args = append(args, strings.TrimPrefix(f, query.FilterPrefixDueAfter))
		case strings.HasPrefix(f, query.FilterPrefixDueBefore):
			conditions = append(conditions, "t.due_date <= ?")
			args = append(args, strings.TrimPrefix(f, query.FilterPrefixDueBefore))
		case f == query.FilterUpcoming:
			conditions = append(conditions, "t.due_date >= ? AND t.status != ?")
			args = append(args, r.today(), model.TaskStatusDone)
		case f == query.FilterOverdue:
			conditions = append(conditions, "t.due_date < ? AND t.status != ?")
			args = append(args, r.today(), model.TaskStatusDone)
		case strings.HasPrefix(f, query.FilterPrefixPriority):
			conditions = append(conditions, "LOWER(t.priority) = ?")
			args = append(args, strings.ToLower(strings.TrimPrefix(f, query.FilterPrefixPriority)))
		case strings.HasPrefix(f, query.FilterPrefixProject):
			conditions = append(conditions, "LOWER(p.name) LIKE ?")
			args = append(args, like(strings.TrimPrefix(f, query.FilterPrefixProject)))
		default:
			r.l.Warnf(ctx, "%s: ignoring unknown filter %q", r.dsn("ListTasks"), f)
		}
	}

	return strings.Join(conditions, " AND "), args
}

// like wraps s for a case-insensitive LIKE substring match.
func like(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
