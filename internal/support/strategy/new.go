package strategy

import (
	"errors"
	"fmt"

	"support-router/internal/reply"
	"support-router/pkg/log"
)

var ErrGeneratorRequired = errors.New("strategy: llm strategy requires a reply generator")

// New picks a strategy by name. gen is only used by the llm strategy.
func New(name string, gen reply.Generator, l log.Logger) (Strategy, error) {
	switch name {
	case "", NameTemplate:
		return NewTemplate(), nil
	case NameLLM:
		if gen == nil {
			return nil, ErrGeneratorRequired
		}
		return NewLLM(gen, l), nil
	default:
		return nil, fmt.Errorf("strategy: unknown reply strategy %q", name)
	}
}
