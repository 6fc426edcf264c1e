package usecase

import (
	"time"

	"workspace-assistant/internal/query"
	"workspace-assistant/internal/query/repository"
	"workspace-assistant/pkg/datemath"
	pkgLog "workspace-assistant/pkg/log"
)

const (
	DefaultMaxListItems = 10
)

// Config tunes rendering and time handling.
type Config struct {
	// Location is the user's timezone. Defaults to UTC.
	Location *time.Location
	// TimelineDays is the default project timeline window.
	TimelineDays int
	// MaxListItems caps every rendered listing.
	MaxListItems int
	// Now overrides the clock; used by tests.
	Now func() time.Time
}

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	dateMath     *datemath.Parser
	now          func() time.Time
	timelineDays int
	maxItems     int
	branches     []branch
}

// New creates a new query UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) query.UseCase {
	uc := &implUseCase{
		l:            l,
		repo:         repo,
		dateMath:     datemath.NewParserInLocation(cfg.Location),
		now:          cfg.Now,
		timelineDays: cfg.TimelineDays,
		maxItems:     cfg.MaxListItems,
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.timelineDays <= 0 {
		uc.timelineDays = repository.DefaultTimelineDays
	}
	if uc.maxItems <= 0 {
		uc.maxItems = DefaultMaxListItems
	}
	uc.branches = uc.buildBranches()
	return uc
}
