package sqlite

import (
	"context"
	"fmt"
	"strings"

	"workspace-assistant/internal/model"
	repo "workspace-assistant/internal/query/repository"
)

// ListFiles returns the user's file metadata, newest upload first, with the
// names of linked projects, tasks and events joined in.
func (r *implRepository) ListFiles(ctx context.Context, opt repo.ListFilesOptions) ([]model.File, error) {
	conditions := []string{"f.user_id = ?"}
	args := []any{opt.UserID}
	if opt.ProjectID != "" {
		conditions = append(conditions, "f.project_id = ?")
		args = append(args, opt.ProjectID)
	}
	if opt.NameSearch != "" {
		conditions = append(conditions, "LOWER(f.name) LIKE ?")
		args = append(args, like(opt.NameSearch))
	}
	if opt.FileType != "" {
		conditions = append(conditions, "f.file_type = ?")
		args = append(args, opt.FileType)
	}
	if opt.ProjectName != "" {
		conditions = append(conditions, "LOWER(p.name) LIKE ?")
		args = append(args, like(opt.ProjectName))
	}

	query := fmt.Sprintf(`SELECT f.id, f.user_id, f.name, f.file_type, f.mime_type, f.size, f.uploaded_at,
		COALESCE(f.project_id, ''), COALESCE(p.name, ''),
		COALESCE(f.task_id, ''), COALESCE(t.title, ''),
		COALESCE(f.event_id, ''), COALESCE(e.title, '')
		FROM files f
		LEFT JOIN projects p ON p.id = f.project_id
		LEFT JOIN tasks t ON t.id = f.task_id
		LEFT JOIN events e ON e.id = f.event_id
		WHERE %s ORDER BY f.uploaded_at DESC, f.name`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFiles"), err)
		return nil, repo.ErrFailedToQuery
	}
	defer rows.Close()

	var files []model.File
	for rows.Next() {
		var (
			f          model.File
			uploadedAt string
		)
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.FileType, &f.MimeType, &f.Size, &uploadedAt,
			&f.ProjectID, &f.ProjectName, &f.TaskID, &f.TaskTitle, &f.EventID, &f.EventTitle); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListFiles"), err)
			return nil, repo.ErrFailedToQuery
		}
		f.UploadedAt = parseStored(uploadedAt)
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListFiles"), err)
		return nil, repo.ErrFailedToQuery
	}
	return files, nil
}
