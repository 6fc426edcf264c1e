package sqlite

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query"
	repo "workspace-assistant/internal/query/repository"
)

// GetProjectItems resolves the project and loads its tasks, events, notes and
// files concurrently. Categories are read independently, so a write racing the
// reads may show up in some categories and not others.
func (r *implRepository) GetProjectItems(ctx context.Context, opt repo.GetProjectOptions) (model.ProjectItems, error) {
	project, err := r.resolveProject(ctx, opt.UserID, opt.ProjectRef)
	if err != nil {
		return model.ProjectItems{}, err
	}

	items := model.ProjectItems{Project: project}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		items.Tasks, err = r.ListTasks(gctx, repo.ListTasksOptions{UserID: opt.UserID, ProjectID: project.ID})
		return err
	})
	g.Go(func() (err error) {
		items.Events, err = r.ListEvents(gctx, repo.ListEventsOptions{UserID: opt.UserID, ProjectID: project.ID})
		return err
	})
	g.Go(func() (err error) {
		items.Notes, err = r.ListNotes(gctx, repo.ListNotesOptions{UserID: opt.UserID, ProjectID: project.ID})
		return err
	})
	g.Go(func() (err error) {
		items.Files, err = r.ListFiles(gctx, repo.ListFilesOptions{UserID: opt.UserID, ProjectID: project.ID})
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ProjectItems{}, err
	}
	return items, nil
}

// GetProjectProgress aggregates task completion and related item counts.
func (r *implRepository) GetProjectProgress(ctx context.Context, opt repo.GetProjectOptions) (model.ProjectProgress, error) {
	project, err := r.resolveProject(ctx, opt.UserID, opt.ProjectRef)
	if err != nil {
		return model.ProjectProgress{}, err
	}

	var (
		tasks  []model.Task
		events []model.Event
		notes  []model.Note
		files  []model.File
	)
	now := r.now()
	horizon := r.dm.ISO(now.AddDate(0, 0, repo.DefaultTimelineDays))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tasks, err = r.ListTasks(gctx, repo.ListTasksOptions{UserID: opt.UserID, ProjectID: project.ID})
		return err
	})
	g.Go(func() (err error) {
		events, err = r.ListEvents(gctx, repo.ListEventsOptions{
			UserID:    opt.UserID,
			ProjectID: project.ID,
			StartDate: r.dm.ISO(now),
			EndDate:   horizon,
		})
		return err
	})
	g.Go(func() (err error) {
		notes, err = r.ListNotes(gctx, repo.ListNotesOptions{UserID: opt.UserID, ProjectID: project.ID})
		return err
	})
	g.Go(func() (err error) {
		files, err = r.ListFiles(gctx, repo.ListFilesOptions{UserID: opt.UserID, ProjectID: project.ID})
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ProjectProgress{}, err
	}

	progress := model.ProjectProgress{
		Project:    project,
		TotalTasks: len(tasks),
		NoteCount:  len(notes),
		FileCount:  len(files),
	}
	today := r.today()
	for _, t := range tasks {
		if t.IsDone() {
			progress.CompletedTasks++
			continue
		}
		progress.PendingTasks++
		if t.HasDueDate() && t.DueDate < today {
			progress.OverdueTasks++
		}
	}
	for _, e := range events {
		if !e.StartTime.Before(now) {
			progress.UpcomingEvents++
		}
	}
	if progress.TotalTasks > 0 {
		progress.Percentage = int(math.Round(float64(progress.CompletedTasks) * 100 / float64(progress.TotalTasks)))
	}
	return progress, nil
}

// GetProjectTimeline merges task deadlines, upcoming events and the project
// deadline that fall within the next Days days. Open tasks already past due
// are kept and flagged overdue.
func (r *implRepository) GetProjectTimeline(ctx context.Context, opt repo.GetProjectTimelineOptions) (model.ProjectTimeline, error) {
	days := opt.Days
	if days <= 0 {
		days = repo.DefaultTimelineDays
	}

	project, err := r.resolveProject(ctx, opt.UserID, opt.ProjectRef)
	if err != nil {
		return model.ProjectTimeline{}, err
	}

	now := r.now()
	today := r.today()
	horizon := r.dm.ISO(now.AddDate(0, 0, days))

	var (
		tasks  []model.Task
		events []model.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tasks, err = r.ListTasks(gctx, repo.ListTasksOptions{
			UserID:    opt.UserID,
			ProjectID: project.ID,
			Filters:   []string{query.DueBefore(horizon)},
		})
		return err
	})
	g.Go(func() (err error) {
		events, err = r.ListEvents(gctx, repo.ListEventsOptions{
			UserID:    opt.UserID,
			ProjectID: project.ID,
			StartDate: today,
			EndDate:   horizon,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ProjectTimeline{}, err
	}

	var items []model.TimelineItem
	for _, t := range tasks {
		overdue := t.DueDate < today && !t.IsDone()
		if t.DueDate < today && !overdue {
			continue
		}
		date, err := r.dm.ParseISO(t.DueDate)
		if err != nil {
			r.l.Warnf(ctx, "%s: task %s has bad due date %q", r.dsn("GetProjectTimeline"), t.ID, t.DueDate)
			continue
		}
		items = append(items, model.TimelineItem{
			Date:    date,
			Kind:    model.TimelineKindTask,
			Title:   t.Title,
			Status:  t.Status,
			Overdue: overdue,
		})
	}
	for _, e := range events {
		if e.EndTime.Before(now) {
			continue
		}
		items = append(items, model.TimelineItem{
			Date:  e.StartTime,
			Kind:  model.TimelineKindEvent,
			Title: e.Title,
		})
	}
	if project.DueDate != "" && project.DueDate >= today && project.DueDate <= horizon {
		if date, err := r.dm.ParseISO(project.DueDate); err == nil {
			items = append(items, model.TimelineItem{
				Date:   date,
				Kind:   model.TimelineKindDeadline,
				Title:  project.Name,
				Status: project.Status,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return model.ProjectTimeline{Project: project, Days: days, Items: items}, nil
}
