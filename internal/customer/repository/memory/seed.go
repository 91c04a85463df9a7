package memory

import (
	"time"

	"support-router/internal/model"
)

// Seed loads a small demo dataset. Customer 1 is Alice, active.
func (s *Store) Seed() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	at := func(days int) time.Time { return base.AddDate(0, 0, days) }

	customers := []model.Customer{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Phone: "555-0101", Status: model.CustomerStatusActive},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0102", Status: model.CustomerStatusActive},
		{ID: 3, Name: "Carol Diaz", Email: "carol@example.com", Phone: "555-0103", Status: model.CustomerStatusDisabled},
		{ID: 4, Name: "David Lee", Email: "david@example.com", Phone: "555-0104", Status: model.CustomerStatusActive},
		{ID: 5, Name: "Eve Martin", Email: "eve@example.com", Phone: "555-0105", Status: model.CustomerStatusActive},
	}
	for i, c := range customers {
		c.CreatedAt = at(i)
		s.InsertCustomer(c)
	}

	tickets := []model.Ticket{
		{CustomerID: 1, Issue: "Cannot log in to dashboard", Priority: model.PriorityHigh, Status: model.TicketStatusOpen, CreatedAt: at(10)},
		{CustomerID: 1, Issue: "Question about invoice", Priority: model.PriorityLow, Status: model.TicketStatusResolved, CreatedAt: at(12)},
		{CustomerID: 2, Issue: "Service outage in EU region", Priority: model.PriorityHigh, Status: model.TicketStatusOpen, CreatedAt: at(11)},
		{CustomerID: 2, Issue: "API rate limit errors", Priority: model.PriorityHigh, Status: model.TicketStatusResolved, CreatedAt: at(13)},
		{CustomerID: 3, Issue: "Refund for unused seats", Priority: model.PriorityMedium, Status: model.TicketStatusOpen, CreatedAt: at(14)},
		{CustomerID: 4, Issue: "Feature request: dark mode", Priority: model.PriorityLow, Status: model.TicketStatusOpen, CreatedAt: at(15)},
		{CustomerID: 5, Issue: "Data export failing", Priority: model.PriorityHigh, Status: model.TicketStatusOpen, CreatedAt: at(16)},
	}
	for _, t := range tickets {
		s.InsertTicket(t)
	}
}
