// Package metrics provides Prometheus metrics for the support router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal tracks routed queries by scenario and outcome
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "support_router",
			Subsystem: "router",
			Name:      "queries_total",
			Help:      "Total number of routed queries by scenario and outcome",
		},
		[]string{"scenario", "outcome"},
	)

	// QueryDuration tracks end-to-end HandleQuery latency
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "support_router",
			Subsystem: "router",
			Name:      "query_duration_seconds",
			Help:      "Duration of HandleQuery in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"scenario"},
	)

	// RepliesDegradedTotal tracks generated replies that fell back to templates
	RepliesDegradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "support_router",
			Subsystem: "reply",
			Name:      "degraded_total",
			Help:      "Total number of replies that fell back to the template text",
		},
		[]string{"operation"},
	)

	// GenerationDuration tracks reply generation latency
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "support_router",
			Subsystem: "reply",
			Name:      "generation_duration_seconds",
			Help:      "Duration of reply generation calls in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"status"},
	)

	// TicketsCreatedTotal tracks tickets created by priority
	TicketsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "support_router",
			Subsystem: "customer",
			Name:      "tickets_created_total",
			Help:      "Total number of tickets created by priority",
		},
		[]string{"priority"},
	)
)
