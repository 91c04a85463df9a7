package http

import (
	"support-router/internal/customer"
	"support-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc customer.UseCase
}

// New creates a new HTTP handler for the customer domain.
func New(l log.Logger, uc customer.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
