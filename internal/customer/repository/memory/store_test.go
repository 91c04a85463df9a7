package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	repo "support-router/internal/customer/repository"
	"support-router/internal/model"
	"support-router/pkg/log"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestListCustomersOrderAndLimit(t *testing.T) {
	s := New(log.NewNop())
	s.Seed()

	active, err := s.ListCustomers(context.Background(), repo.ListCustomersOptions{Status: "active", Limit: 100})
	if err != nil {
		t.Fatalf("ListCustomers() error: %v", err)
	}
	want := []int64{1, 2, 4, 5}
	if len(active) != len(want) {
		t.Fatalf("expected %d active customers, got %d", len(want), len(active))
	}
	for i, id := range want {
		if active[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, active[i].ID)
		}
	}

	limited, _ := s.ListCustomers(context.Background(), repo.ListCustomersOptions{Limit: 2})
	if len(limited) != 2 || limited[0].ID != 1 {
		t.Errorf("unexpected limited list: %+v", limited)
	}
}

func TestCreateTicketMissingCustomer(t *testing.T) {
	s := New(log.NewNop())
	s.Seed()
	before := s.CountTickets()

	_, err := s.CreateTicket(context.Background(), repo.CreateTicketOptions{CustomerID: 999, Issue: "x", Priority: model.PriorityHigh})
	if !errors.Is(err, repo.ErrCustomerMissing) {
		t.Fatalf("expected ErrCustomerMissing, got %v", err)
	}
	if s.CountTickets() != before {
		t.Error("no ticket must be written for a missing customer")
	}
}

func TestListTicketsTieBreakOnID(t *testing.T) {
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s := New(log.NewNop(), WithClock(fixedClock(ts)))
	s.InsertCustomer(model.Customer{ID: 1, Name: "Alice", Status: model.CustomerStatusActive})

	first, _ := s.CreateTicket(context.Background(), repo.CreateTicketOptions{CustomerID: 1, Issue: "a", Priority: model.PriorityLow})
	second, _ := s.CreateTicket(context.Background(), repo.CreateTicketOptions{CustomerID: 1, Issue: "b", Priority: model.PriorityLow})

	tickets, _ := s.ListTickets(context.Background(), 1)
	if len(tickets) != 2 || tickets[0].ID != second.ID || tickets[1].ID != first.ID {
		t.Errorf("expected id DESC on equal timestamps, got %+v", tickets)
	}
}

func TestUpdateCustomerUnknown(t *testing.T) {
	s := New(log.NewNop())
	c, err := s.UpdateCustomer(context.Background(), repo.UpdateCustomerOptions{ID: 7, Fields: map[string]string{"name": "x"}})
	if err != nil || c.ID != 0 {
		t.Errorf("expected zero customer, got %+v, %v", c, err)
	}
}

func TestConcurrentCreateTicket(t *testing.T) {
	s := New(log.NewNop())
	s.InsertCustomer(model.Customer{ID: 1, Name: "Alice", Status: model.CustomerStatusActive})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.CreateTicket(context.Background(), repo.CreateTicketOptions{CustomerID: 1, Issue: "load", Priority: model.PriorityMedium})
		}()
	}
	wg.Wait()

	tickets, _ := s.ListTickets(context.Background(), 1)
	seen := make(map[int64]bool)
	for _, tk := range tickets {
		if seen[tk.ID] {
			t.Fatalf("duplicate ticket id %d", tk.ID)
		}
		seen[tk.ID] = true
	}
	if len(tickets) != 20 {
		t.Errorf("expected 20 tickets, got %d", len(tickets))
	}
}
