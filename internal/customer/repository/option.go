package repository

import "support-router/internal/model"

// ListCustomersOptions filters customers. Results are ordered by id ascending.
type ListCustomersOptions struct {
	Status string
	Limit  int
}

// UpdateCustomerOptions holds an already-validated partial update.
// Fields keys are a non-empty subset of model.CustomerFields.
type UpdateCustomerOptions struct {
	ID     int64
	Fields map[string]string
}

type CreateTicketOptions struct {
	CustomerID int64
	Issue      string
	Priority   model.Priority
}
