package usecase

import (
	"context"
	"fmt"

	"support-router/internal/customer"
	"support-router/internal/model"
	"support-router/internal/support"
	"support-router/internal/support/strategy"
)

// EvaluateBillingAndCancel is the first step of the escalation protocol. It
// answers with a signal instead of a final recommendation.
func (uc *implUseCase) EvaluateBillingAndCancel(ctx context.Context, input support.EvaluateInput) (support.Reply, error) {
	if !input.HasCustomerID {
		return support.Reply{Text: TmplNeedCustomerID, Signal: support.SignalNeedsContext}, nil
	}

	c, err := uc.data.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: data.GetCustomer: %v", LogPrefixEvaluate, err)
		return support.Reply{}, err
	}

	res := uc.strategy.Render(ctx, strategy.Draft{
		Operation: OpEvaluate,
		Template:  fmt.Sprintf(TmplEvaluation, c.Name),
		Prompt:    fmt.Sprintf(PromptEvaluation, input.Query, c.Name, c.Status),
	})
	return support.Reply{
		Text:     res.Text,
		Degraded: res.Degraded,
		Signal:   support.SignalNeedsBillingHistory,
		Customer: &c,
	}, nil
}

// BuildRefundResponse counts unresolved high-priority tickets in the history
// and always opens a new high-priority ticket for the billing dispute.
func (uc *implUseCase) BuildRefundResponse(ctx context.Context, input support.RefundInput) (support.Reply, error) {
	c := input.History.Customer
	if c.ID <= 0 {
		return support.Reply{}, support.ErrMissingCustomer
	}
	total := len(input.History.Tickets)
	unresolved := input.History.CountUnresolvedHigh()

	t, err := uc.data.CreateTicket(ctx, customer.CreateTicketInput{
		CustomerID: c.ID,
		Issue:      IssueBillingCancel,
		Priority:   string(model.PriorityHigh),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: data.CreateTicket: %v", LogPrefixRefundResponse, err)
		return support.Reply{}, err
	}

	res := uc.strategy.Render(ctx, strategy.Draft{
		Operation: OpRefundResponse,
		Template:  fmt.Sprintf(TmplRefund, c.Name, c.ID, total, unresolved),
		Prompt:    fmt.Sprintf(PromptRefund, input.Query, c.Name, c.ID, total, unresolved, t.Issue),
	})
	return support.Reply{Text: res.Text, Degraded: res.Degraded, Customer: &c, Ticket: &t}, nil
}
