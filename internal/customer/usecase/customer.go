package usecase

import (
	"context"
	"fmt"
	"strings"

	"support-router/internal/customer"
	repo "support-router/internal/customer/repository"
	"support-router/internal/model"
)

// GetCustomer returns ErrCustomerNotFound when the id is unknown.
func (uc *implUseCase) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	if id <= 0 {
		return model.Customer{}, customer.ErrInvalidID
	}

	c, err := uc.repo.GetCustomer(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetCustomer GetCustomer: %v", err)
		return model.Customer{}, err
	}
	if c.ID == 0 {
		return model.Customer{}, notFound(id)
	}
	return c, nil
}

// ListCustomers normalizes a non-positive limit to customer.DefaultListLimit.
func (uc *implUseCase) ListCustomers(ctx context.Context, input customer.ListCustomersInput) ([]model.Customer, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = customer.DefaultListLimit
	}

	customers, err := uc.repo.ListCustomers(ctx, repo.ListCustomersOptions{
		Status: strings.TrimSpace(input.Status),
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCustomers ListCustomers: %v", err)
		return nil, err
	}
	return customers, nil
}

// UpdateCustomer applies the recognized fields of input and returns the stored row.
func (uc *implUseCase) UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) (model.Customer, error) {
	if len(input.Fields) == 0 {
		return model.Customer{}, customer.ErrNoUpdateFields
	}

	fields := make(map[string]string, len(input.Fields))
	for k, v := range input.Fields {
		key := strings.ToLower(strings.TrimSpace(k))
		if model.IsCustomerField(key) {
			fields[key] = strings.TrimSpace(v)
		}
	}
	if len(fields) == 0 {
		return model.Customer{}, customer.ErrNoValidFields
	}
	if input.ID <= 0 {
		return model.Customer{}, customer.ErrInvalidID
	}

	c, err := uc.repo.UpdateCustomer(ctx, repo.UpdateCustomerOptions{ID: input.ID, Fields: fields})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCustomer UpdateCustomer: %v", err)
		return model.Customer{}, err
	}
	if c.ID == 0 {
		return model.Customer{}, notFound(input.ID)
	}
	return c, nil
}

// GetCustomerHistory returns the customer with tickets newest first.
func (uc *implUseCase) GetCustomerHistory(ctx context.Context, id int64) (customer.History, error) {
	c, err := uc.GetCustomer(ctx, id)
	if err != nil {
		return customer.History{}, err
	}

	tickets, err := uc.repo.ListTickets(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetCustomerHistory ListTickets: %v", err)
		return customer.History{}, err
	}
	return customer.History{Customer: c, Tickets: tickets}, nil
}

func notFound(id int64) error {
	return fmt.Errorf("%w: id %d", customer.ErrCustomerNotFound, id)
}
