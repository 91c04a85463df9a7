package repository

import (
	"context"

	"support-router/internal/model"
)

// Repository is the composed interface for the customer domain data store.
type Repository interface {
	CustomerRepository
	TicketRepository
}

// CustomerRepository reads and mutates customer rows.
// Lookups that miss return a zero-value Customer (ID == 0) and no error.
type CustomerRepository interface {
	GetCustomer(ctx context.Context, id int64) (model.Customer, error)
	ListCustomers(ctx context.Context, opt ListCustomersOptions) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, opt UpdateCustomerOptions) (model.Customer, error)
}

// TicketRepository creates and lists tickets.
type TicketRepository interface {
	// CreateTicket checks the customer and inserts in one unit of work.
	// Returns ErrCustomerMissing when the customer does not exist.
	CreateTicket(ctx context.Context, opt CreateTicketOptions) (model.Ticket, error)
	// ListTickets returns a customer's tickets ordered created_at DESC, id DESC.
	ListTickets(ctx context.Context, customerID int64) ([]model.Ticket, error)
}
