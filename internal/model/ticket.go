package model

import (
	"strings"
	"time"
)

type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusResolved TicketStatus = "resolved"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes p and reports whether it is low, medium or high.
func ParsePriority(p string) (Priority, bool) {
	switch v := Priority(strings.ToLower(strings.TrimSpace(p))); v {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return v, true
	default:
		return "", false
	}
}

// Ticket represents a row of the tickets table.
type Ticket struct {
	ID         int64        `json:"id"`
	CustomerID int64        `json:"customer_id"`
	Issue      string       `json:"issue"`
	Status     TicketStatus `json:"status"`
	Priority   Priority     `json:"priority"`
	CreatedAt  time.Time    `json:"created_at"`
}

// IsHighPriority reports whether the ticket has high priority.
func (t Ticket) IsHighPriority() bool {
	return t.Priority == PriorityHigh
}

// IsUnresolvedHigh reports a high-priority ticket that is not resolved yet.
func (t Ticket) IsUnresolvedHigh() bool {
	return t.IsHighPriority() && t.Status != TicketStatusResolved
}
