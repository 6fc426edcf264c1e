package seed_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"workspace-assistant/internal/query/repository"
	"workspace-assistant/internal/query/repository/sqlite"
	"workspace-assistant/internal/seed"
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

var fixedNow = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

const fixtureYAML = `
user_id: demo
projects:
  - name: Website Redesign
    status: active
    due: in 3 weeks
    progress: 40
    tasks:
      - title: Ship landing page
        priority: high
        due: "+2"
        labels: [frontend, launch]
      - title: Audit analytics
        status: done
        due: "2026-10-01"
    events:
      - title: Design review
        date: "+1"
        at: "14:30"
        duration: 45m
        location: Room 4
    notes:
      - title: Brand voice
        content: Friendly and direct.
        pinned: true
    files:
      - name: wireframes.pdf
        type: pdf
        mime_type: application/pdf
        size: 204800
        task: Ship landing page
      - name: review-recording.mp4
        type: video
        event: design review
tasks:
  - title: Renew passport
    due: "-3"
events:
  - title: Company offsite
    date: "2026-11-05"
    all_day: true
notes:
  - title: Groceries
    content: Eggs, milk
`

func newStore(t *testing.T) repository.Store {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return sqlite.New(db, &mockLogger{}, sqlite.Options{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
}

func newSeeder(store repository.Store) *seed.Seeder {
	return seed.New(&mockLogger{}, store, seed.Options{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{name: "valid", yaml: fixtureYAML},
		{name: "missing user", yaml: "projects: []\n", wantErr: seed.ErrMissingUser},
		{name: "unknown key", yaml: "user_id: demo\nprojetcs: []\n"},
		{name: "malformed", yaml: "user_id: [demo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := seed.Parse([]byte(tt.yaml))
			switch {
			case tt.name == "valid":
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if f.UserID != "demo" || len(f.Projects) != 1 || len(f.Projects[0].Tasks) != 2 {
					t.Errorf("unexpected fixture: %+v", f)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			default:
				if err == nil {
					t.Error("expected an error")
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := seed.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if _, err := seed.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	f, err := seed.Parse([]byte(fixtureYAML))
	if err != nil {
		t.Fatal(err)
	}

	sum, err := newSeeder(store).Apply(ctx, f)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := seed.Summary{Projects: 1, Tasks: 3, Events: 2, Notes: 2, Files: 2}
	if sum != want {
		t.Errorf("summary = %+v, want %+v", sum, want)
	}

	projects, _ := store.ListProjects(ctx, repository.ListProjectsOptions{UserID: "demo"})
	if len(projects) != 1 || projects[0].DueDate != "2026-11-11" || projects[0].Progress != 40 {
		t.Fatalf("unexpected projects: %+v", projects)
	}

	tasks, _ := store.ListTasks(ctx, repository.ListTasksOptions{UserID: "demo"})
	byTitle := map[string]string{}
	for _, tk := range tasks {
		byTitle[tk.Title] = tk.DueDate
		if len(tk.ID) != 26 {
			t.Errorf("task %q id %q is not a ULID", tk.Title, tk.ID)
		}
	}
	if byTitle["Ship landing page"] != "2026-10-23" || byTitle["Renew passport"] != "2026-10-18" {
		t.Errorf("unexpected relative due dates: %v", byTitle)
	}

	events, _ := store.ListEvents(ctx, repository.ListEventsOptions{UserID: "demo"})
	var review bool
	for _, e := range events {
		if e.Title == "Design review" {
			review = true
			if want := time.Date(2026, 10, 22, 14, 30, 0, 0, time.UTC); !e.StartTime.Equal(want) {
				t.Errorf("review start = %v, want %v", e.StartTime, want)
			}
			if e.EndTime.Sub(e.StartTime) != 45*time.Minute {
				t.Errorf("review duration = %v", e.EndTime.Sub(e.StartTime))
			}
		}
		if e.Title == "Company offsite" && !e.AllDay {
			t.Error("offsite should be all-day")
		}
	}
	if !review {
		t.Error("design review not stored")
	}

	files, _ := store.ListFiles(ctx, repository.ListFilesOptions{UserID: "demo"})
	links := map[string][2]string{}
	for _, fl := range files {
		links[fl.Name] = [2]string{fl.TaskTitle, fl.EventTitle}
	}
	if links["wireframes.pdf"][0] != "Ship landing page" {
		t.Errorf("wireframes not linked to task: %v", links)
	}
	if links["review-recording.mp4"][1] != "Design review" {
		t.Errorf("recording not linked to event: %v", links)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	f, _ := seed.Parse([]byte(fixtureYAML))
	s := newSeeder(store)

	wrote, _, err := s.SeedIfEmpty(ctx, f)
	if err != nil || !wrote {
		t.Fatalf("first run: wrote=%v err=%v", wrote, err)
	}
	wrote, sum, err := s.SeedIfEmpty(ctx, f)
	if err != nil || wrote || sum != (seed.Summary{}) {
		t.Fatalf("second run: wrote=%v sum=%+v err=%v", wrote, sum, err)
	}

	projects, _ := store.ListProjects(ctx, repository.ListProjectsOptions{UserID: "demo"})
	if len(projects) != 1 {
		t.Errorf("expected one project after two runs, got %d", len(projects))
	}
}

func TestApply_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		fixture seed.Fixture
		wantErr error
	}{
		{
			name:    "bad due date",
			fixture: seed.Fixture{UserID: "demo", Tasks: []seed.Task{{Title: "x", Due: "next week"}}},
			wantErr: seed.ErrInvalidDate,
		},
		{
			name:    "bad offset",
			fixture: seed.Fixture{UserID: "demo", Tasks: []seed.Task{{Title: "x", Due: "+two"}}},
			wantErr: seed.ErrInvalidDate,
		},
		{
			name:    "event without date",
			fixture: seed.Fixture{UserID: "demo", Events: []seed.Event{{Title: "x"}}},
			wantErr: seed.ErrInvalidEvent,
		},
		{
			name:    "event bad clock",
			fixture: seed.Fixture{UserID: "demo", Events: []seed.Event{{Title: "x", Date: "+1", At: "25:99"}}},
			wantErr: seed.ErrInvalidEvent,
		},
		{
			name:    "missing user",
			fixture: seed.Fixture{},
			wantErr: seed.ErrMissingUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newSeeder(newStore(t)).Apply(context.Background(), tt.fixture)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
