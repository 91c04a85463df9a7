package support

import (
	"support-router/internal/customer"
	"support-router/internal/model"
)

// Signal tells the router what an evaluation step needs next.
type Signal string

const (
	SignalNone                Signal = ""
	SignalNeedsContext        Signal = "needs_context"
	SignalNeedsBillingHistory Signal = "needs_billing_history"
)

// Reply is the outcome of one orchestrator operation.
type Reply struct {
	Text string
	// Degraded is set when the generated text fell back to the template.
	Degraded bool
	Signal   Signal
	Customer *model.Customer
	Ticket   *model.Ticket
	Rows     []ReportRow
}

// ReportRow is one customer line of the high-priority report.
type ReportRow struct {
	CustomerID   int64   `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	HighPriority int     `json:"high_priority_tickets"`
	TicketIDs    []int64 `json:"ticket_ids"`
}

// --- UseCase Inputs ---

type AccountHelpInput struct {
	Customer model.Customer
	Query    string
}

type UpgradeRequestInput struct {
	CustomerID int64
	Query      string
}

// EvaluateInput carries the id extracted from the query, if any.
type EvaluateInput struct {
	CustomerID    int64
	HasCustomerID bool
	Query         string
}

type RefundInput struct {
	History customer.History
	Query   string
}

// ReportInput holds histories in listing order.
type ReportInput struct {
	Histories []customer.History
	Query     string
}

// UpdateAndHistoryInput describes a combined update and lookup. Updated is
// nil when no email was found in the query.
type UpdateAndHistoryInput struct {
	Query   string
	Email   string
	Updated *model.Customer
	History customer.History
}
