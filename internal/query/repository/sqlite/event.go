package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"workspace-assistant/internal/model"
	repo "workspace-assistant/internal/query/repository"
)

const eventColumns = `e.id, e.user_id, COALESCE(e.project_id, ''), COALESCE(p.name, ''), e.title, e.description,
	e.location, e.start_time, e.end_time, e.all_day, COALESCE(e.external_id, '')`

// ListEvents returns the user's events matching opt in start order, or newest
// first when the past filter is set.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	where, args, order := r.buildEventQuery(ctx, opt)
	query := fmt.Sprintf(`SELECT %s FROM events e LEFT JOIN projects p ON p.id = e.project_id
		WHERE %s ORDER BY %s`, eventColumns, where, order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToQuery
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToQuery
	}
	return events, nil
}

func scanEvents(rows *sql.Rows) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		var (
			e          model.Event
			start, end string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.ProjectName, &e.Title, &e.Description,
			&e.Location, &start, &end, &e.AllDay, &e.ExternalID); err != nil {
			return nil, err
		}
		e.StartTime = parseStored(start)
		e.EndTime = parseStored(end)
		events = append(events, e)
	}
	return events, rows.Err()
}
