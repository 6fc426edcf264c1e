package sqlite

import (
	"context"
	"fmt"
	"strings"

	"workspace-assistant/internal/model"
	repo "workspace-assistant/internal/query/repository"
)

// ListNotes returns the user's notes, pinned first, then most recently updated.
func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]model.Note, error) {
	conditions := []string{"n.user_id = ?"}
	args := []any{opt.UserID}
	if opt.ProjectID != "" {
		conditions = append(conditions, "n.project_id = ?")
		args = append(args, opt.ProjectID)
	}
	if opt.ContentSearch != "" {
		conditions = append(conditions, "(LOWER(n.title) LIKE ? OR LOWER(n.content) LIKE ?)")
		args = append(args, like(opt.ContentSearch), like(opt.ContentSearch))
	}
	if opt.ProjectName != "" {
		conditions = append(conditions, "LOWER(p.name) LIKE ?")
		args = append(args, like(opt.ProjectName))
	}
	if opt.PinnedOnly {
		conditions = append(conditions, "n.pinned = 1")
	}

	query := fmt.Sprintf(`SELECT n.id, n.user_id, COALESCE(n.project_id, ''), COALESCE(p.name, ''), n.title,
		n.content, n.pinned, n.created_at, n.updated_at
		FROM notes n LEFT JOIN projects p ON p.id = n.project_id
		WHERE %s ORDER BY n.pinned DESC, n.updated_at DESC`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToQuery
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var (
			n                    model.Note
			createdAt, updatedAt string
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.ProjectID, &n.ProjectName, &n.Title, &n.Content,
			&n.Pinned, &createdAt, &updatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListNotes"), err)
			return nil, repo.ErrFailedToQuery
		}
		n.CreatedAt = parseStored(createdAt)
		n.UpdatedAt = parseStored(updatedAt)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToQuery
	}
	return notes, nil
}
