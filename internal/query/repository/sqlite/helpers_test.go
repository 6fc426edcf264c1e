package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"workspace-assistant/internal/query/repository"
	"workspace-assistant/internal/query/repository/sqlite"
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

// Wednesday, 10:00 UTC.
var fixedNow = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return time.Date(2026, 10, day, hour, 0, 0, 0, time.UTC)
}

// newStore opens a fresh database in a temp dir and loads the fixture below.
func newStore(t *testing.T) repository.Store {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	store := sqlite.New(db, &mockLogger{}, sqlite.Options{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
	seed(t, store)
	return store
}

func seed(t *testing.T, s repository.Store) {
	t.Helper()
	ctx := context.Background()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	projects := []repository.CreateProjectOptions{
		{ID: "p1", UserID: "u1", Name: "Apollo", Status: "active", DueDate: "2026-11-05"},
		{ID: "p2", UserID: "u1", Name: "Apollo Moon Base", Status: "active"},
		{ID: "p3", UserID: "u1", Name: "Website Redesign", Status: "on_hold", DueDate: "2026-12-01"},
		{ID: "p4", UserID: "u2", Name: "Apollo", Status: "active"},
	}
	for _, p := range projects {
		_, err := s.CreateProject(ctx, p)
		must(err)
	}

	tasks := []repository.CreateTaskOptions{
		{ID: "t1", UserID: "u1", ProjectID: "p1", Title: "Write spec", Status: "todo", Priority: "high", DueDate: "2026-10-20"},
		{ID: "t2", UserID: "u1", ProjectID: "p1", Title: "Review design", Status: "in_progress", Priority: "medium", DueDate: "2026-10-23"},
		{ID: "t3", UserID: "u1", ProjectID: "p1", Title: "Ship v1", Status: "done", Priority: "high", DueDate: "2026-10-19"},
		{ID: "t4", UserID: "u1", ProjectID: "p1", Title: "Plan launch", Status: "todo", Priority: "low", DueDate: "2026-12-15"},
		{ID: "t5", UserID: "u1", Title: "Buy milk", Status: "todo", Priority: "low", Labels: []string{"home"}},
		{ID: "t6", UserID: "u1", ProjectID: "p3", Title: "Update site copy", Status: "todo", Priority: "medium", DueDate: "2026-10-25"},
		{ID: "t7", UserID: "u2", ProjectID: "p4", Title: "Other user task", Status: "todo", DueDate: "2026-10-22"},
	}
	for _, tk := range tasks {
		_, err := s.CreateTask(ctx, tk)
		must(err)
	}

	events := []repository.UpsertEventOptions{
		{ID: "e1", UserID: "u1", ProjectID: "p1", Title: "Apollo sync", StartTime: at(22, 9), EndTime: at(22, 10)},
		{ID: "e2", UserID: "u1", ProjectID: "p1", Title: "Retro", StartTime: at(14, 15), EndTime: at(14, 16)},
		{ID: "e3", UserID: "u1", ProjectID: "p3", Title: "Design review", StartTime: time.Date(2026, 11, 3, 13, 0, 0, 0, time.UTC), EndTime: time.Date(2026, 11, 3, 14, 0, 0, 0, time.UTC)},
		{ID: "e4", UserID: "u1", Title: "Dentist", StartTime: at(21, 8), EndTime: at(21, 9)},
	}
	for _, e := range events {
		_, err := s.UpsertEvent(ctx, e)
		must(err)
	}

	notes := []repository.CreateNoteOptions{
		{ID: "n1", UserID: "u1", ProjectID: "p1", Title: "Kickoff notes", Content: "Discussed budget and scope", Pinned: true, CreatedAt: at(10, 9)},
		{ID: "n2", UserID: "u1", Title: "Ideas", Content: "Try a new color palette", CreatedAt: at(18, 9)},
	}
	for _, n := range notes {
		_, err := s.CreateNote(ctx, n)
		must(err)
	}

	files := []repository.CreateFileOptions{
		{ID: "f1", UserID: "u1", Name: "spec.pdf", FileType: "pdf", Size: 2048, UploadedAt: at(15, 9), ProjectID: "p1", TaskID: "t1"},
		{ID: "f2", UserID: "u1", Name: "mockup.png", FileType: "image", Size: 4096, UploadedAt: at(16, 9), ProjectID: "p3", EventID: "e3"},
		{ID: "f3", UserID: "u1", Name: "notes.docx", FileType: "document", Size: 512, UploadedAt: at(17, 9)},
	}
	for _, f := range files {
		_, err := s.CreateFile(ctx, f)
		must(err)
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}
