package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"workspace-assistant/internal/query/repository"
	"workspace-assistant/pkg/datemath"
	"workspace-assistant/pkg/log"
)

// storedTime is the layout of timestamp columns. Values are UTC so that
// text comparison orders them chronologically.
const storedTime = "2006-01-02T15:04:05Z"

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	dm  *datemath.Parser
	now func() time.Time
}

// Options configures the repository.
type Options struct {
	// Location is the user's timezone for day boundaries. Defaults to UTC.
	Location *time.Location
	// Now overrides the clock; used by tests.
	Now func() time.Time
}

// New creates a SQLite-backed Store. The schema must already exist; see Migrate.
func New(db *sql.DB, l log.Logger, opt Options) repository.Store {
	if db == nil {
		panic("query/repository/sqlite: db is required")
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	return &implRepository{
		db:  db,
		l:   l,
		dm:  datemath.NewParserInLocation(opt.Location),
		now: now,
	}
}

// Open opens the database file at path, creating its directory, and applies
// the connection pragmas.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}
	return db, nil
}

// Migrate creates the tables and indexes if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("query/repository/sqlite.%s", method)
}

// today returns the current local date as YYYY-MM-DD.
func (r *implRepository) today() string {
	return r.dm.ISO(r.now())
}

func formatStored(t time.Time) string {
	return t.UTC().Format(storedTime)
}

func parseStored(s string) time.Time {
	t, err := time.Parse(storedTime, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullable maps "" to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
