package customer

import (
	"fmt"
	"testing"

	"support-router/internal/model"
)

func TestHistoryHighPriority(t *testing.T) {
	h := History{Tickets: []model.Ticket{
		{ID: 3, Priority: model.PriorityHigh, Status: model.TicketStatusOpen},
		{ID: 2, Priority: model.PriorityLow, Status: model.TicketStatusOpen},
		{ID: 1, Priority: model.PriorityHigh, Status: model.TicketStatusResolved},
	}}

	high := h.HighPriority()
	if len(high) != 2 || high[0].ID != 3 || high[1].ID != 1 {
		t.Errorf("unexpected high-priority tickets: %+v", high)
	}
	if got := h.CountUnresolvedHigh(); got != 1 {
		t.Errorf("expected 1 unresolved high ticket, got %d", got)
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(fmt.Errorf("update: %w", ErrNoValidFields)) {
		t.Error("wrapped ErrNoValidFields should be a validation error")
	}
	if IsValidation(ErrCustomerNotFound) {
		t.Error("not found is not a validation error")
	}
}
