package middleware

import (
	"project-planner/config"
	"project-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. A disabled rate limit leaves RateLimit as a no-op.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedUsers)
	}
	return mw
}
