// Package strategy renders orchestrator replies either from deterministic
// templates or through the external reply generator.
package strategy

import "context"

const (
	NameTemplate = "template"
	NameLLM      = "llm"
)

// Draft is everything a strategy may need to render one reply.
type Draft struct {
	// Operation labels the orchestrator operation, used for metrics.
	Operation string
	// Template is the deterministic text, always populated.
	Template string
	// Prompt is sent to the generator. Empty means render Template as is.
	Prompt string
}

// Result is the rendered text. Err is the generator error behind a degraded result.
type Result struct {
	Text     string
	Degraded bool
	Err      error
}

// Strategy builds reply text from a Draft. Render never fails outright.
type Strategy interface {
	Name() string
	Render(ctx context.Context, d Draft) Result
}
