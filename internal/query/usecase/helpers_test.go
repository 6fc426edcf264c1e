package usecase_test

import (
	"context"
	"errors"
	"time"

	"workspace-assistant/internal/model"
	"workspace-assistant/internal/query"
	"workspace-assistant/internal/query/repository"
	"workspace-assistant/internal/query/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errDown = errors.New("database is down")

// Wednesday, 10:00 UTC. The week runs 2026-10-19 to 2026-10-25.
var fixedNow = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

// mockRepo returns canned data and records the last options it saw.
// When err is set every call fails.
type mockRepo struct {
	err error

	tasks    []model.Task
	events   []model.Event
	projects []model.Project
	notes    []model.Note
	files    []model.File
	items    model.ProjectItems
	itemsErr error
	progress model.ProjectProgress
	timeline model.ProjectTimeline

	taskOpt     repository.ListTasksOptions
	eventOpt    repository.ListEventsOptions
	projectOpt  repository.ListProjectsOptions
	noteOpt     repository.ListNotesOptions
	fileOpt     repository.ListFilesOptions
	getOpt      repository.GetProjectOptions
	timelineOpt repository.GetProjectTimelineOptions
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.taskOpt = opt
	return m.tasks, m.err
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	m.eventOpt = opt
	return m.events, m.err
}

func (m *mockRepo) ListProjects(ctx context.Context, opt repository.ListProjectsOptions) ([]model.Project, error) {
	m.projectOpt = opt
	return m.projects, m.err
}

func (m *mockRepo) GetProjectItems(ctx context.Context, opt repository.GetProjectOptions) (model.ProjectItems, error) {
	m.getOpt = opt
	if m.itemsErr != nil {
		return model.ProjectItems{}, m.itemsErr
	}
	return m.items, m.err
}

func (m *mockRepo) GetProjectProgress(ctx context.Context, opt repository.GetProjectOptions) (model.ProjectProgress, error) {
	m.getOpt = opt
	return m.progress, m.err
}

func (m *mockRepo) GetProjectTimeline(ctx context.Context, opt repository.GetProjectTimelineOptions) (model.ProjectTimeline, error) {
	m.timelineOpt = opt
	return m.timeline, m.err
}

func (m *mockRepo) ListNotes(ctx context.Context, opt repository.ListNotesOptions) ([]model.Note, error) {
	m.noteOpt = opt
	return m.notes, m.err
}

func (m *mockRepo) ListFiles(ctx context.Context, opt repository.ListFilesOptions) ([]model.File, error) {
	m.fileOpt = opt
	return m.files, m.err
}

func newUseCase(repo *mockRepo) query.UseCase {
	return usecase.New(&mockLogger{}, repo, usecase.Config{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
}

func answer(uc query.UseCase, q string) query.AnswerOutput {
	out, err := uc.Answer(context.Background(), model.Scope{UserID: "u1"}, query.AnswerInput{Query: q})
	if err != nil {
		panic(err)
	}
	return out
}
