package middleware

import (
	"time"

	"meeting-insights/pkg/log"
)

// Config holds the throttling settings.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. The limiter is nil when throttling is disabled.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, limiterCacheSize, limiterTTL)
	}
	return mw
}

const (
	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)
