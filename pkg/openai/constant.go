package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single completion request
	DefaultTimeout = 30 * time.Second
)
