package usecase

import (
	"support-router/internal/customer"
	"support-router/internal/support"
	"support-router/internal/support/strategy"
	"support-router/pkg/log"
)

type implUseCase struct {
	data     customer.UseCase
	strategy strategy.Strategy
	l        log.Logger
}

var _ support.UseCase = (*implUseCase)(nil)

// New creates the support orchestrator. The strategy decides how reply text
// is produced; side effects are the same under every strategy.
func New(data customer.UseCase, s strategy.Strategy, l log.Logger) support.UseCase {
	return &implUseCase{
		data:     data,
		strategy: s,
		l:        l,
	}
}
