package usecase

import (
	"context"
	"fmt"
	"strings"

	"support-router/internal/customer"
	"support-router/internal/support"
	"support-router/internal/support/strategy"
)

// UpdateAndHistoryReply answers a combined contact update and history lookup
// in a single reply.
func (uc *implUseCase) UpdateAndHistoryReply(ctx context.Context, input support.UpdateAndHistoryInput) (support.Reply, error) {
	c := input.History.Customer
	if c.ID <= 0 {
		return support.Reply{}, support.ErrMissingCustomer
	}

	update := TmplEmailNotFound
	if input.Updated != nil {
		update = fmt.Sprintf(TmplEmailUpdated, input.Updated.Name, input.Updated.ID, input.Updated.Email)
	}
	history := formatHistory(input.History)

	email := input.Email
	if email == "" {
		email = "(none)"
	}

	res := uc.strategy.Render(ctx, strategy.Draft{
		Operation: OpUpdateAndHistory,
		Template:  update + "\n\n" + history,
		Prompt:    fmt.Sprintf(PromptUpdateAndHistory, input.Query, email, update, history),
	})
	return support.Reply{Text: res.Text, Degraded: res.Degraded, Customer: &c}, nil
}

func formatHistory(h customer.History) string {
	var b strings.Builder
	fmt.Fprintf(&b, TmplHistoryHeader, h.Customer.Name, h.Customer.ID, len(h.Tickets))
	if len(h.Tickets) == 0 {
		b.WriteString("\n" + TmplHistoryNoItems)
		return b.String()
	}
	for _, t := range h.Tickets {
		b.WriteString("\n")
		fmt.Fprintf(&b, TmplHistoryLine, t.ID, t.Priority, t.Status, t.Issue)
	}
	return b.String()
}
