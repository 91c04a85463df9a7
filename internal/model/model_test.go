package model

import "testing"

func TestCustomerTier(t *testing.T) {
	if got := (Customer{Status: CustomerStatusActive}).Tier(); got != TierPremium {
		t.Errorf("active customer: expected premium, got %s", got)
	}
	if got := (Customer{Status: CustomerStatusDisabled}).Tier(); got != TierStandard {
		t.Errorf("disabled customer: expected standard, got %s", got)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"high", PriorityHigh, true},
		{" HIGH ", PriorityHigh, true},
		{"Medium", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"urgent", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsUnresolvedHigh(t *testing.T) {
	open := Ticket{Priority: PriorityHigh, Status: TicketStatusOpen}
	done := Ticket{Priority: PriorityHigh, Status: TicketStatusResolved}
	low := Ticket{Priority: PriorityLow, Status: TicketStatusOpen}
	if !open.IsUnresolvedHigh() || done.IsUnresolvedHigh() || low.IsUnresolvedHigh() {
		t.Error("unexpected IsUnresolvedHigh result")
	}
}

func TestIsCustomerField(t *testing.T) {
	for _, f := range []string{"name", "email", "phone", "status"} {
		if !IsCustomerField(f) {
			t.Errorf("expected %s to be updatable", f)
		}
	}
	if IsCustomerField("id") || IsCustomerField("created_at") {
		t.Error("id and created_at must not be updatable")
	}
}
