package http

import (
	"support-router/internal/router"
	"support-router/pkg/log"
)

type handler struct {
	l      log.Logger
	router router.Router
}

// New creates a new HTTP handler for routed support queries.
func New(l log.Logger, r router.Router) *handler {
	return &handler{
		l:      l,
		router: r,
	}
}
