package middleware

import (
	"support-router/config"
	"support-router/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the HTTP middleware set. A disabled rate limit leaves limiter nil.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedUsers)
	}
	return m
}
