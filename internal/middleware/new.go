package middleware

import (
	"workspace-assistant/pkg/log"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUsername  = "X-Username"
	HeaderRequestID = "X-Request-ID"

	defaultRateLimitPerMin = 60
)

// Config holds the tunables for the HTTP middleware chain.
type Config struct {
	// RateLimitPerMin caps requests per caller per minute. Zero uses the default.
	RateLimitPerMin int
	// RateLimitDisabled turns RateLimit into a no-op.
	RateLimitDisabled bool
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = defaultRateLimitPerMin
	}

	mw := Middleware{l: l}
	if !cfg.RateLimitDisabled {
		mw.rateLimiter = newRateLimiter(perMin)
	}
	return mw
}
