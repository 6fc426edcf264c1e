package seed

import (
	"time"

	"workspace-assistant/internal/query/repository"
	"workspace-assistant/pkg/datemath"
	pkgLog "workspace-assistant/pkg/log"
)

const defaultEventDuration = time.Hour

// Options anchors relative fixture dates.
type Options struct {
	Location *time.Location
	Now      func() time.Time
}

// Seeder writes fixtures into the workspace store.
type Seeder struct {
	l        pkgLog.Logger
	store    repository.Store
	dateMath *datemath.Parser
	now      func() time.Time
	ids      *idSource
}

// New creates a Seeder backed by store.
func New(l pkgLog.Logger, store repository.Store, opt Options) *Seeder {
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		l:        l,
		store:    store,
		dateMath: datemath.NewParserInLocation(opt.Location),
		now:      now,
		ids:      newIDSource(now),
	}
}
