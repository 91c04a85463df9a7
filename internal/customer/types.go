package customer

import "support-router/internal/model"

// DefaultListLimit applies when a list request carries no positive limit.
const DefaultListLimit = 20

// History is a customer paired with its tickets, newest first.
type History struct {
	Customer model.Customer `json:"customer"`
	Tickets  []model.Ticket `json:"tickets"`
}

// HighPriority returns the high-priority tickets in history order.
func (h History) HighPriority() []model.Ticket {
	var out []model.Ticket
	for _, t := range h.Tickets {
		if t.IsHighPriority() {
			out = append(out, t)
		}
	}
	return out
}

// CountUnresolvedHigh counts high-priority tickets that are not resolved.
func (h History) CountUnresolvedHigh() int {
	n := 0
	for _, t := range h.Tickets {
		if t.IsUnresolvedHigh() {
			n++
		}
	}
	return n
}

// --- UseCase Inputs ---

type ListCustomersInput struct {
	Status string
	Limit  int
}

// UpdateCustomerInput carries a partial update. Keys outside
// model.CustomerFields are ignored.
type UpdateCustomerInput struct {
	ID     int64
	Fields map[string]string
}

type CreateTicketInput struct {
	CustomerID int64
	Issue      string
	Priority   string
}
