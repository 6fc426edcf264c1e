package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query/parser"
	repo "workspace-assistant/internal/query/repository"
)

const projectColumns = `id, user_id, name, description, status, COALESCE(due_date, ''), progress, created_at`

// ListProjects returns the user's projects ordered by due date, undated last.
func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListProjectsOptions) ([]model.Project, error) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}
	if opt.Query != "" {
		conditions = append(conditions, "LOWER(name) LIKE ?")
		args = append(args, like(opt.Query))
	}

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE %s ORDER BY due_date IS NULL, due_date, name`,
		projectColumns, strings.Join(conditions, " AND "))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToQuery
	}
	defer rows.Close()

	projects, err := scanProjects(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProjects"), err)
		return nil, repo.ErrFailedToQuery
	}
	return projects, nil
}

func scanProjects(rows *sql.Rows) ([]model.Project, error) {
	var projects []model.Project
	for rows.Next() {
		var (
			p         model.Project
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.DueDate,
			&p.Progress, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = parseStored(createdAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// resolveProject maps a project id or loosely typed name to one project.
// Matching runs exact name, then substring, then substring with stop words
// removed from both sides. An exact match wins; otherwise the shortest
// candidate name wins, ties broken alphabetically.
func (r *implRepository) resolveProject(ctx context.Context, userID, ref string) (model.Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Project{}, repo.ErrProjectNotFound
	}

	projects, err := r.ListProjects(ctx, repo.ListProjectsOptions{UserID: userID})
	if err != nil {
		return model.Project{}, err
	}

	p, ok := matchProject(projects, ref)
	if !ok {
		return model.Project{}, fmt.Errorf("%w: %q", repo.ErrProjectNotFound, ref)
	}
	return p, nil
}

func matchProject(projects []model.Project, ref string) (model.Project, bool) {
	needle := strings.ToLower(ref)
	for _, p := range projects {
		if p.ID == ref || strings.ToLower(p.Name) == needle {
			return p, true
		}
	}

	if p, ok := shortest(projects, func(name string) bool {
		return strings.Contains(name, needle)
	}); ok {
		return p, true
	}

	stripped := stripStopWords(needle)
	if stripped == "" {
		return model.Project{}, false
	}
	return shortest(projects, func(name string) bool {
		return strings.Contains(stripStopWords(name), stripped)
	})
}

// shortest returns the project with the shortest lower-cased name accepted by match.
func shortest(projects []model.Project, match func(name string) bool) (model.Project, bool) {
	var (
		best  model.Project
		found bool
	)
	for _, p := range projects {
		name := strings.ToLower(p.Name)
		if !match(name) {
			continue
		}
		if !found || len(p.Name) < len(best.Name) || len(p.Name) == len(best.Name) && p.Name < best.Name {
			best, found = p, true
		}
	}
	return best, found
}

func stripStopWords(s string) string {
	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if !parser.IsStopWord(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
