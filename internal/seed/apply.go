package seed

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"workspace-assistant/internal/query/repository"
)

// SeedIfEmpty applies f unless its user already owns at least one project.
// It reports whether anything was written.
func (s *Seeder) SeedIfEmpty(ctx context.Context, f Fixture) (bool, Summary, error) {
	existing, err := s.store.ListProjects(ctx, repository.ListProjectsOptions{UserID: f.UserID})
	if err != nil {
		return false, Summary{}, fmt.Errorf("seed: check existing projects: %w", err)
	}
	if len(existing) > 0 {
		s.l.Infof(ctx, "seed.SeedIfEmpty: user %s already has %d project(s), skipping", f.UserID, len(existing))
		return false, Summary{}, nil
	}

	sum, err := s.Apply(ctx, f)
	if err != nil {
		return false, sum, err
	}
	return true, sum, nil
}

// Apply inserts every entity in f. It stops at the first failure; rows
// written before it stay.
func (s *Seeder) Apply(ctx context.Context, f Fixture) (Summary, error) {
	if strings.TrimSpace(f.UserID) == "" {
		return Summary{}, ErrMissingUser
	}

	var sum Summary
	for _, p := range f.Projects {
		due, err := s.resolveDate(p.Due)
		if err != nil {
			return sum, fmt.Errorf("project %q: %w", p.Name, err)
		}
		project, err := s.store.CreateProject(ctx, repository.CreateProjectOptions{
			ID:          s.ids.next(),
			UserID:      f.UserID,
			Name:        p.Name,
			Description: p.Description,
			Status:      p.Status,
			DueDate:     due,
			Progress:    p.Progress,
		})
		if err != nil {
			return sum, fmt.Errorf("project %q: %w", p.Name, err)
		}
		sum.Projects++

		if err := s.applyItems(ctx, f.UserID, project.ID, items{p.Tasks, p.Events, p.Notes, p.Files}, &sum); err != nil {
			return sum, fmt.Errorf("project %q: %w", p.Name, err)
		}
	}

	if err := s.applyItems(ctx, f.UserID, "", items{f.Tasks, f.Events, f.Notes, f.Files}, &sum); err != nil {
		return sum, err
	}

	s.l.Infof(ctx, "seed.Apply: user=%s projects=%d tasks=%d events=%d notes=%d files=%d",
		f.UserID, sum.Projects, sum.Tasks, sum.Events, sum.Notes, sum.Files)
	return sum, nil
}

type items struct {
	tasks  []Task
	events []Event
	notes  []Note
	files  []File
}

// applyItems writes one scope's items. Files are written last so they can
// link to tasks and events of the same scope by title.
func (s *Seeder) applyItems(ctx context.Context, userID, projectID string, in items, sum *Summary) error {
	taskIDs := make(map[string]string, len(in.tasks))
	eventIDs := make(map[string]string, len(in.events))

	for _, t := range in.tasks {
		due, err := s.resolveDate(t.Due)
		if err != nil {
			return fmt.Errorf("task %q: %w", t.Title, err)
		}
		created, err := s.store.CreateTask(ctx, repository.CreateTaskOptions{
			ID:          s.ids.next(),
			UserID:      userID,
			ProjectID:   projectID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Priority:    t.Priority,
			DueDate:     due,
			Labels:      t.Labels,
		})
		if err != nil {
			return fmt.Errorf("task %q: %w", t.Title, err)
		}
		taskIDs[strings.ToLower(t.Title)] = created.ID
		sum.Tasks++
	}

	for _, e := range in.events {
		start, end, err := s.eventTimes(e)
		if err != nil {
			return fmt.Errorf("event %q: %w", e.Title, err)
		}
		created, err := s.store.UpsertEvent(ctx, repository.UpsertEventOptions{
			ID:          s.ids.next(),
			UserID:      userID,
			ProjectID:   projectID,
			Title:       e.Title,
			Description: e.Description,
			Location:    e.Location,
			StartTime:   start,
			EndTime:     end,
			AllDay:      e.AllDay,
		})
		if err != nil {
			return fmt.Errorf("event %q: %w", e.Title, err)
		}
		eventIDs[strings.ToLower(e.Title)] = created.ID
		sum.Events++
	}

	for _, n := range in.notes {
		if _, err := s.store.CreateNote(ctx, repository.CreateNoteOptions{
			ID:        s.ids.next(),
			UserID:    userID,
			ProjectID: projectID,
			Title:     n.Title,
			Content:   n.Content,
			Pinned:    n.Pinned,
		}); err != nil {
			return fmt.Errorf("note %q: %w", n.Title, err)
		}
		sum.Notes++
	}

	for _, f := range in.files {
		if _, err := s.store.CreateFile(ctx, repository.CreateFileOptions{
			ID:        s.ids.next(),
			UserID:    userID,
			Name:      f.Name,
			FileType:  f.Type,
			MimeType:  f.MimeType,
			Size:      f.Size,
			ProjectID: projectID,
			TaskID:    taskIDs[strings.ToLower(f.Task)],
			EventID:   eventIDs[strings.ToLower(f.Event)],
		}); err != nil {
			return fmt.Errorf("file %q: %w", f.Name, err)
		}
		sum.Files++
	}

	return nil
}

// resolveDate turns "", "YYYY-MM-DD", a signed day offset or a relative phrase
// such as "tomorrow" or "next friday" into a stored date.
func (s *Seeder) resolveDate(v string) (string, error) {
	t, ok, err := s.parseDate(v)
	if err != nil || !ok {
		return "", err
	}
	return s.dateMath.ISO(t), nil
}

func (s *Seeder) parseDate(v string) (time.Time, bool, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false, nil
	}
	if strings.HasPrefix(v, "+") || strings.HasPrefix(v, "-") {
		days, err := strconv.Atoi(v)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, v)
		}
		return s.dateMath.StartOfDay(s.now()).AddDate(0, 0, days), true, nil
	}
	if t, err := s.dateMath.ParseISO(v); err == nil {
		return t, true, nil
	}
	t, err := s.dateMath.Parse(v, s.now())
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return t, true, nil
}

func (s *Seeder) eventTimes(e Event) (time.Time, time.Time, error) {
	day, ok, err := s.parseDate(e.Date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidEvent)
	}

	if e.AllDay {
		return day, s.dateMath.EndOfDay(day), nil
	}

	start := day
	if e.At != "" {
		clock, err := time.Parse("15:04", e.At)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: at %q", ErrInvalidEvent, e.At)
		}
		start = day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
	}

	duration := defaultEventDuration
	if e.Duration != "" {
		duration, err = time.ParseDuration(e.Duration)
		if err != nil || duration < 0 {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: duration %q", ErrInvalidEvent, e.Duration)
		}
	}

	return start, start.Add(duration), nil
}
