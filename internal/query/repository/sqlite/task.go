package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"workspace-assistant/internal/model"
	repo "workspace-assistant/internal/query/repository"
)

const taskColumns = `t.id, t.user_id, COALESCE(t.project_id, ''), COALESCE(p.name, ''), t.title, t.description,
	t.status, t.priority, COALESCE(t.due_date, ''), t.labels, t.created_at`

// ListTasks returns the user's tasks matching opt, ordered by due date with
// undated tasks last.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := r.buildTaskQuery(ctx, opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks t LEFT JOIN projects p ON p.id = t.project_id
		WHERE %s ORDER BY t.due_date IS NULL, t.due_date, t.title`, taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToQuery
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToQuery
	}
	return tasks, nil
}

func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		var (
			t         model.Task
			labels    string
			createdAt string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.ProjectID, &t.ProjectName, &t.Title, &t.Description,
			&t.Status, &t.Priority, &t.DueDate, &labels, &createdAt); err != nil {
			return nil, err
		}
		if labels != "" {
			if err := json.Unmarshal([]byte(labels), &t.Labels); err != nil {
				return nil, fmt.Errorf("labels of task %s: %w", t.ID, err)
			}
		}
		t.CreatedAt = parseStored(createdAt)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
