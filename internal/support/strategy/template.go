package strategy

import "context"

type templateStrategy struct{}

// NewTemplate returns the deterministic strategy.
func NewTemplate() Strategy {
	return templateStrategy{}
}

func (templateStrategy) Name() string { return NameTemplate }

func (templateStrategy) Render(_ context.Context, d Draft) Result {
	return Result{Text: d.Template}
}
