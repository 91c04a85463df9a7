package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"support-router/pkg/log"
)

const (
	// Log prefixes
	LogPrefixGenerate = "llmprovider.Manager.GenerateContent"
)

// Manager tries providers in priority order. Each provider gets
// RetryAttempts calls with a linearly growing delay between them.
type Manager struct {
	providers []Provider
	config    *Config
	l         log.Logger
}

// Config controls retries and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included.
	MaxTotalTimeout time.Duration
}

// NewManager creates a Manager. RetryAttempts below 1 is raised to 1.
func NewManager(providers []Provider, config *Config, l log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		l:         l,
	}
}

func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, p := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d provider(s): %v", ErrProviderTimeout, i, err)
		}

		resp, err := m.tryProvider(ctx, p, req)
		if err == nil {
			m.l.Infof(ctx, "%s: %s/%s answered (tokens in=%d out=%d)",
				LogPrefixGenerate, p.Name(), p.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
			return resp, nil
		}

		m.l.Warnf(ctx, "%s: %s/%s failed: %v", LogPrefixGenerate, p.Name(), p.Model(), err)
		lastErr = err
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// tryProvider calls p until it succeeds, the attempts run out, the context
// ends or p reports a rate limit.
func (m *Manager) tryProvider(ctx context.Context, p Provider, req *Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			if resp.Usage == nil {
				resp.Usage = &Usage{}
			}
			return resp, nil
		}
		lastErr = err
		if errors.Is(err, ErrProviderRateLimited) {
			break
		}
	}
	return nil, lastErr
}
