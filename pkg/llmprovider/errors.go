package llmprovider

import (
	"errors"
	"fmt"

	"support-router/pkg/ollama"
	"support-router/pkg/openai"
)

var (
	ErrNoProvidersConfigured = errors.New("llmprovider: no providers configured")
	ErrInvalidRequest        = errors.New("llmprovider: prompt is required")
	ErrAllProvidersFailed    = errors.New("llmprovider: every provider failed")
	ErrProviderTimeout       = errors.New("llmprovider: reply budget exhausted")

	// ErrProviderRateLimited marks a 429 from a provider. The manager stops
	// retrying that provider and moves on to the next one.
	ErrProviderRateLimited = errors.New("llmprovider: provider rate limited")
)

// ProviderError records which provider produced err.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// wrapClientError tags a client error with the provider name and folds the
// clients' own rate-limit errors into ErrProviderRateLimited.
func wrapClientError(provider string, err error) error {
	if errors.Is(err, ollama.ErrRateLimited) || errors.Is(err, openai.ErrRateLimited) {
		err = fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}
