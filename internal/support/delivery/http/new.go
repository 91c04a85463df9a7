package http

import (
	"support-router/internal/support"
	"support-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc support.UseCase
}

// New creates a new HTTP handler for direct support operations.
func New(l log.Logger, uc support.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
