package usecase

import (
	"context"
	"fmt"

	"support-router/internal/customer"
	"support-router/internal/model"
	"support-router/internal/support"
	"support-router/internal/support/strategy"
)

func (uc *implUseCase) AccountHelp(ctx context.Context, input support.AccountHelpInput) (support.Reply, error) {
	c := input.Customer
	res := uc.strategy.Render(ctx, strategy.Draft{
		Operation: OpAccountHelp,
		Template:  fmt.Sprintf(TmplAccountHelp, c.Name, c.Status, input.Query),
		Prompt:    fmt.Sprintf(PromptAccountHelp, input.Query, c.Name, c.Status, c.Tier()),
	})
	return support.Reply{Text: res.Text, Degraded: res.Degraded, Customer: &c}, nil
}

func (uc *implUseCase) UpgradeRequest(ctx context.Context, input support.UpgradeRequestInput) (support.Reply, error) {
	if input.CustomerID <= 0 {
		return support.Reply{}, support.ErrInvalidCustomerID
	}

	c, err := uc.data.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: data.GetCustomer: %v", LogPrefixUpgradeRequest, err)
		return support.Reply{}, err
	}

	t, err := uc.data.CreateTicket(ctx, customer.CreateTicketInput{
		CustomerID: c.ID,
		Issue:      IssueUpgradeRequest,
		Priority:   string(model.PriorityHigh),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: data.CreateTicket: %v", LogPrefixUpgradeRequest, err)
		return support.Reply{}, err
	}

	res := uc.strategy.Render(ctx, strategy.Draft{
		Operation: OpUpgradeRequest,
		Template:  fmt.Sprintf(TmplUpgrade, c.Name, c.ID),
		Prompt:    fmt.Sprintf(PromptUpgrade, input.Query, c.Name, c.ID, c.Status, t.Issue, t.ID),
	})
	return support.Reply{Text: res.Text, Degraded: res.Degraded, Customer: &c, Ticket: &t}, nil
}
