package memory

import (
	"context"
	"sort"

	repo "support-router/internal/customer/repository"
	"support-router/internal/model"
)

// GetCustomer returns the zero value when id is unknown.
func (s *Store) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers[id], nil
}

func (s *Store) ListCustomers(ctx context.Context, opt repo.ListCustomersOptions) ([]model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if opt.Status != "" && string(c.Status) != opt.Status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, opt repo.UpdateCustomerOptions) (model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[opt.ID]
	if !ok {
		return model.Customer{}, nil
	}
	for field, v := range opt.Fields {
		switch field {
		case "name":
			c.Name = v
		case "email":
			c.Email = v
		case "phone":
			c.Phone = v
		case "status":
			c.Status = model.CustomerStatus(v)
		}
	}
	c.UpdatedAt = s.now()
	s.customers[c.ID] = c
	return c, nil
}

// CreateTicket holds the write lock across the existence check and the insert.
func (s *Store) CreateTicket(ctx context.Context, opt repo.CreateTicketOptions) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[opt.CustomerID]; !ok {
		return model.Ticket{}, repo.ErrCustomerMissing
	}

	t := model.Ticket{
		ID:         s.nextTick,
		CustomerID: opt.CustomerID,
		Issue:      opt.Issue,
		Status:     model.TicketStatusOpen,
		Priority:   opt.Priority,
		CreatedAt:  s.now(),
	}
	s.nextTick++
	s.tickets = append(s.tickets, t)
	return t, nil
}

func (s *Store) ListTickets(ctx context.Context, customerID int64) ([]model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Ticket, 0)
	for _, t := range s.tickets {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// InsertCustomer stores c, assigning the next id when c.ID is zero.
func (s *Store) InsertCustomer(c model.Customer) model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == 0 {
		c.ID = s.nextCust
	}
	if c.ID >= s.nextCust {
		s.nextCust = c.ID + 1
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	s.customers[c.ID] = c
	return c
}

// InsertTicket stores t as-is, assigning the next id when t.ID is zero.
// It does not check the customer so fixtures can set any timestamp or status.
func (s *Store) InsertTicket(t model.Ticket) model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		t.ID = s.nextTick
	}
	if t.ID >= s.nextTick {
		s.nextTick = t.ID + 1
	}
	if t.Status == "" {
		t.Status = model.TicketStatusOpen
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	s.tickets = append(s.tickets, t)
	return t
}

// CountTickets returns the number of stored tickets.
func (s *Store) CountTickets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}
