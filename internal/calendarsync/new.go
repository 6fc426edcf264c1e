package calendarsync

import (
	"time"

	"workspace-assistant/internal/query/repository"
	"workspace-assistant/pkg/datemath"
	pkgLog "workspace-assistant/pkg/log"
)

const (
	DefaultDays       = 30
	defaultMaxRetries = 3
	defaultBackoff    = 2 * time.Second

	externalIDPrefix = "gcal:"
	untitledEvent    = "(untitled event)"
)

// Options tunes an importer. Zero values pick the defaults.
type Options struct {
	Location   *time.Location
	MaxRetries int
	Backoff    time.Duration
	Now        func() time.Time
}

type implUseCase struct {
	l          pkgLog.Logger
	source     Source
	writer     repository.Writer
	dateMath   *datemath.Parser
	maxRetries int
	backoff    time.Duration
	now        func() time.Time
}

// New creates a calendar importer that writes through w.
func New(l pkgLog.Logger, source Source, w repository.Writer, opt Options) UseCase {
	uc := &implUseCase{
		l:          l,
		source:     source,
		writer:     w,
		dateMath:   datemath.NewParserInLocation(opt.Location),
		maxRetries: opt.MaxRetries,
		backoff:    opt.Backoff,
		now:        opt.Now,
	}
	if uc.maxRetries <= 0 {
		uc.maxRetries = defaultMaxRetries
	}
	if uc.backoff <= 0 {
		uc.backoff = defaultBackoff
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
