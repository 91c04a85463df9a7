package customer

import (
	"context"

	"support-router/internal/model"
)

// UseCase is the data access capability used by the router and the support orchestrator.
type UseCase interface {
	GetCustomer(ctx context.Context, id int64) (model.Customer, error)
	ListCustomers(ctx context.Context, input ListCustomersInput) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (model.Customer, error)
	CreateTicket(ctx context.Context, input CreateTicketInput) (model.Ticket, error)
	GetCustomerHistory(ctx context.Context, id int64) (History, error)
}
