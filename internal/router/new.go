package router

import (
	"context"

	"support-router/internal/customer"
	"support-router/internal/support"
	"support-router/pkg/log"
)

// Router classifies free-text support queries and runs the matching scenario.
type Router interface {
	Classify(query string) Scenario
	HandleQuery(ctx context.Context, query string) Result
}

// QueryRouter sequences DataAccess and SupportOrchestrator calls per scenario.
// It keeps no state between calls.
type QueryRouter struct {
	data    customer.UseCase
	support support.UseCase
	cfg     Config
	l       log.Logger
}

var _ Router = (*QueryRouter)(nil)

// New creates a QueryRouter. Zero config values take the package defaults.
func New(data customer.UseCase, sup support.UseCase, cfg Config, l log.Logger) *QueryRouter {
	if cfg.FallbackScenario != ScenarioTaskAllocation {
		cfg.FallbackScenario = DefaultFallbackScenario
	}
	if cfg.DefaultCustomerID <= 0 {
		cfg.DefaultCustomerID = DefaultCustomerID
	}
	if cfg.PremiumListLimit <= 0 {
		cfg.PremiumListLimit = DefaultPremiumListLimit
	}
	if cfg.HistoryFanOut < MinHistoryFanOut {
		cfg.HistoryFanOut = MinHistoryFanOut
	}
	return &QueryRouter{
		data:    data,
		support: sup,
		cfg:     cfg,
		l:       l,
	}
}
