package strategy

import (
	"context"

	"support-router/internal/metrics"
	"support-router/internal/reply"
	"support-router/pkg/log"
)

const logPrefixRender = "internal.support.strategy.Render"

type llmStrategy struct {
	gen reply.Generator
	l   log.Logger
}

// NewLLM returns a strategy that asks gen for the reply text and falls back
// to the template text when generation fails.
func NewLLM(gen reply.Generator, l log.Logger) Strategy {
	return &llmStrategy{gen: gen, l: l}
}

func (s *llmStrategy) Name() string { return NameLLM }

func (s *llmStrategy) Render(ctx context.Context, d Draft) Result {
	if d.Prompt == "" {
		return Result{Text: d.Template}
	}

	text, err := s.gen.Generate(ctx, d.Prompt)
	if err != nil {
		metrics.RepliesDegradedTotal.WithLabelValues(d.Operation).Inc()
		s.l.Warnf(ctx, "%s: %s degraded to template: %v", logPrefixRender, d.Operation, err)
		return Result{Text: d.Template, Degraded: true, Err: err}
	}
	return Result{Text: text}
}
