package sqlite

import (
	"context"
	"strings"

	"workspace-assistant/internal/query"
	repo "workspace-assistant/internal/query/repository"
	"workspace-assistant/pkg/datemath"
)

// buildEventQuery builds the WHERE clause, args and ORDER BY for ListEvents.
func (r *implRepository) buildEventQuery(ctx context.Context, opt repo.ListEventsOptions) (string, []any, string) {
	conditions := []string{"e.user_id = ?"}
	args := []any{opt.UserID}
	order := "e.start_time ASC, e.title"

	if opt.ProjectID != "" {
		conditions = append(conditions, "e.project_id = ?")
		args = append(args, opt.ProjectID)
	}
	if opt.StartDate != "" {
		if day, err := r.dm.ParseISO(opt.StartDate); err == nil {
			conditions = append(conditions, "e.start_time >= ?")
			args = append(args, formatStored(day))
		} else {
			r.l.Warnf(ctx, "%s: bad start date %q: %v", r.dsn("ListEvents"), opt.StartDate, err)
		}
	}
	if opt.EndDate != "" {
		if day, err := r.dm.ParseISO(opt.EndDate); err == nil {
			conditions = append(conditions, "e.start_time <= ?")
			args = append(args, formatStored(r.dm.EndOfDay(day)))
		} else {
			r.l.Warnf(ctx, "%s: bad end date %q: %v", r.dsn("ListEvents"), opt.EndDate, err)
		}
	}
	if opt.Query != "" {
		conditions = append(conditions, "(LOWER(e.title) LIKE ? OR LOWER(e.description) LIKE ?)")
		args = append(args, like(opt.Query), like(opt.Query))
	}

	now := formatStored(r.now())
	for _, f := range opt.Filters {
		switch {
		case f == query.FilterUpcoming:
			conditions = append(conditions, "e.end_time >= ?")
			args = append(args, now)
		case f == query.FilterPast:
			conditions = append(conditions, "e.end_time < ?")
			args = append(args, now)
			order = "e.start_time DESC, e.title"
		case strings.HasPrefix(f, query.FilterPrefixMonth):
			month, ok := datemath.LookupMonth(strings.TrimPrefix(f, query.FilterPrefixMonth))
			if !ok {
				r.l.Warnf(ctx, "%s: unknown month in filter %q", r.dsn("ListEvents"), f)
				continue
			}
			first, last := r.dm.MonthBounds(r.now().In(r.dm.Location()).Year(), month)
			conditions = append(conditions, "e.start_time >= ? AND e.start_time <= ?")
			args = append(args, formatStored(first), formatStored(last))
		case strings.HasPrefix(f, query.FilterPrefixProject):
			conditions = append(conditions, "LOWER(p.name) LIKE ?")
			args = append(args, like(strings.TrimPrefix(f, query.FilterPrefixProject)))
		default:
			r.l.Warnf(ctx, "%s: ignoring unknown filter %q", r.dsn("ListEvents"), f)
		}
	}

	return strings.Join(conditions, " AND "), args, order
}
