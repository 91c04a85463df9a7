package usecase

import (
	"context"
	"time"

	"support-router/internal/customer"
	"support-router/internal/customer/repository"
	"support-router/pkg/kafka"
	"support-router/pkg/log"
)

// TicketPublisher receives ticket events after they are committed.
type TicketPublisher interface {
	Publish(ctx context.Context, ev kafka.Event) error
}

// publishTimeout bounds a ticket event write once the row is committed.
const publishTimeout = 2 * time.Second

// implUseCase is the private implementation of customer.UseCase.
type implUseCase struct {
	repo           repository.Repository
	publisher      TicketPublisher
	publishTimeout time.Duration
	l              log.Logger
}

var _ customer.UseCase = (*implUseCase)(nil)

// New creates a new customer UseCase implementation. publisher may be nil.
func New(repo repository.Repository, publisher TicketPublisher, l log.Logger) customer.UseCase {
	return &implUseCase{
		repo:           repo,
		publisher:      publisher,
		publishTimeout: publishTimeout,
		l:              l,
	}
}
