package usecase

import (
	"context"
	"errors"
	"strings"

	"support-router/internal/customer"
	repo "support-router/internal/customer/repository"
	"support-router/internal/metrics"
	"support-router/internal/model"
	"support-router/pkg/kafka"
)

// CreateTicket validates input, inserts an open ticket and publishes a
// ticket.created event. Publishing is best effort and time bounded.
func (uc *implUseCase) CreateTicket(ctx context.Context, input customer.CreateTicketInput) (model.Ticket, error) {
	issue := strings.TrimSpace(input.Issue)
	if issue == "" {
		return model.Ticket{}, customer.ErrEmptyIssue
	}
	priority, ok := model.ParsePriority(input.Priority)
	if !ok {
		return model.Ticket{}, customer.ErrInvalidPriority
	}
	if input.CustomerID <= 0 {
		return model.Ticket{}, customer.ErrInvalidID
	}

	t, err := uc.repo.CreateTicket(ctx, repo.CreateTicketOptions{
		CustomerID: input.CustomerID,
		Issue:      issue,
		Priority:   priority,
	})
	if errors.Is(err, repo.ErrCustomerMissing) {
		return model.Ticket{}, notFound(input.CustomerID)
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTicket CreateTicket: %v", err)
		return model.Ticket{}, err
	}

	metrics.TicketsCreatedTotal.WithLabelValues(string(t.Priority)).Inc()
	uc.publishCreated(ctx, t)
	return t, nil
}

func (uc *implUseCase) publishCreated(ctx context.Context, t model.Ticket) {
	if uc.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, uc.publishTimeout)
	defer cancel()

	err := uc.publisher.Publish(ctx, kafka.Event{
		Type:       kafka.EventTicketCreated,
		TicketID:   t.ID,
		CustomerID: t.CustomerID,
		Issue:      t.Issue,
		Priority:   string(t.Priority),
		Status:     string(t.Status),
		OccurredAt: t.CreatedAt,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateTicket publish ticket %d: %v", t.ID, err)
	}
}
