package router

import (
	"testing"

	"support-router/pkg/log"
)

func TestClassify(t *testing.T) {
	r := New(nil, nil, Config{}, log.NewNop())

	tests := []struct {
		query string
		want  Scenario
	}{
		{"I need help with my account, customer ID 1", ScenarioTaskAllocation},
		{"Please look at id: 12", ScenarioTaskAllocation},
		{"customer #7 cannot log in", ScenarioTaskAllocation},
		{"I want to cancel my subscription but I'm having billing issues", ScenarioNegotiationEscalation},
		{"Billing is wrong, please CANCEL", ScenarioNegotiationEscalation},
		{"I was charged twice and want to cancel, customer ID 3", ScenarioNegotiationEscalation},
		{"cancel billing for all high-priority premium customers", ScenarioNegotiationEscalation},
		{"What's the status of all high-priority tickets for premium customers?", ScenarioMultiStepCoordination},
		{"show high priority issues for premium accounts", ScenarioMultiStepCoordination},
		{"Update my email to new@example.com and show my ticket history", ScenarioMultiIntent},
		{"change my phone and list my tickets", ScenarioMultiIntent},
		{"Change my email to id9@example.com and show my ticket history", ScenarioMultiIntent},
		{"update email to customer5@example.com, show tickets", ScenarioMultiIntent},
		{"id9@example.com wants help with customer ID 4", ScenarioTaskAllocation},
		{"hello there", ScenarioFallback},
		{"I want to cancel", ScenarioFallback},
		{"", ScenarioFallback},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := r.Classify(tt.query); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassifyConfiguredFallback(t *testing.T) {
	r := New(nil, nil, Config{FallbackScenario: ScenarioTaskAllocation}, log.NewNop())
	if got := r.Classify("hello there"); got != ScenarioTaskAllocation {
		t.Errorf("expected task_allocation fallback, got %s", got)
	}

	r = New(nil, nil, Config{FallbackScenario: ScenarioMultiIntent}, log.NewNop())
	if got := r.Classify("hello there"); got != ScenarioFallback {
		t.Errorf("unsupported fallback should reset to fallback, got %s", got)
	}
}

func TestExtractCustomerID(t *testing.T) {
	tests := []struct {
		query  string
		want   int64
		wantOK bool
	}{
		{"customer 7 reported issue 42", 42, true},
		{"customer ID 1", 1, true},
		{"no numbers here", 0, false},
		{"id 99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := ExtractCustomerID(tt.query)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractCustomerID(%q) = %d, %v; want %d, %v", tt.query, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractEmail(t *testing.T) {
	got, ok := ExtractEmail("set a.b+c@mail.example.org, not x@y.io")
	if !ok || got != "a.b+c@mail.example.org" {
		t.Errorf("unexpected email: %q %v", got, ok)
	}
	if _, ok := ExtractEmail("no address"); ok {
		t.Error("expected no email")
	}
}
