package router

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"support-router/internal/customer"
	"support-router/internal/model"
	"support-router/internal/support"
)

func fail(err error) outcome {
	return outcome{err: err, extra: map[string]any{}}
}

func formatID(id int64, ok bool) string {
	if !ok {
		return extractedCustomerIDEmpty
	}
	return strconv.FormatInt(id, 10)
}

// noteDegraded records a reply that fell back to template text.
func noteDegraded(t *trail, op string, rep support.Reply) bool {
	if rep.Degraded {
		t.add(TrailDegraded, op)
	}
	return rep.Degraded
}

func (r *QueryRouter) taskAllocation(ctx context.Context, query string, t *trail) outcome {
	t.add(TrailTaskAllocation, query)
	id, ok := ExtractCustomerID(query)
	t.add(TrailExtractedID, formatID(id, ok))
	if !ok {
		return outcome{reply: ReplyCustomerIDMissing, extra: map[string]any{}}
	}

	t.add(TrailFetchCustomer, id)
	c, err := r.data.GetCustomer(ctx, id)
	if err != nil {
		return fail(err)
	}

	tier := c.Tier()
	t.add(TrailTier, tier)
	t.add(TrailAccountHelp, tier)
	rep, err := r.support.AccountHelp(ctx, support.AccountHelpInput{Customer: c, Query: query})
	if err != nil {
		return fail(err)
	}

	return outcome{
		reply:    rep.Text,
		extra:    map[string]any{ExtraKeyCustomer: c},
		degraded: noteDegraded(t, "account help", rep),
	}
}

func (r *QueryRouter) negotiation(ctx context.Context, query string, t *trail) outcome {
	t.add(TrailNegotiation, query)
	id, ok := ExtractCustomerID(query)
	t.add(TrailExtractedID, formatID(id, ok))

	t.add(TrailInitialEval)
	first, err := r.support.EvaluateBillingAndCancel(ctx, support.EvaluateInput{
		CustomerID:    id,
		HasCustomerID: ok,
		Query:         query,
	})
	if err != nil {
		return fail(err)
	}
	degraded := noteDegraded(t, "initial evaluation", first)
	if first.Signal != support.SignalNeedsBillingHistory {
		return outcome{reply: first.Text, extra: map[string]any{}, degraded: degraded}
	}

	t.add(TrailFetchHistory)
	h, err := r.data.GetCustomerHistory(ctx, id)
	if err != nil {
		return fail(err)
	}

	t.add(TrailRefund)
	second, err := r.support.BuildRefundResponse(ctx, support.RefundInput{History: h, Query: query})
	if err != nil {
		return fail(err)
	}
	degraded = noteDegraded(t, "refund response", second) || degraded

	extra := map[string]any{ExtraKeyHistory: h}
	if second.Ticket != nil {
		extra[ExtraKeyTicket] = *second.Ticket
	}
	return outcome{
		reply:    first.Text + TrailReplyStepsJoiner + second.Text,
		extra:    extra,
		degraded: degraded,
	}
}

func (r *QueryRouter) multiStep(ctx context.Context, query string, t *trail) outcome {
	t.add(TrailMultiStep, query)
	t.add(TrailFetchPremium)
	customers, err := r.data.ListCustomers(ctx, customer.ListCustomersInput{
		Status: string(model.CustomerStatusActive),
		Limit:  r.cfg.PremiumListLimit,
	})
	if err != nil {
		return fail(err)
	}

	histories, err := r.fetchHistories(ctx, customers, t)
	if err != nil {
		return fail(err)
	}

	t.add(TrailReport)
	rep, err := r.support.HighPriorityReport(ctx, support.ReportInput{Histories: histories, Query: query})
	if err != nil {
		return fail(err)
	}

	return outcome{
		reply:    rep.Text,
		extra:    map[string]any{ExtraKeyRows: rep.Rows},
		degraded: noteDegraded(t, "high-priority report", rep),
	}
}

// fetchHistories loads one history per customer. With HistoryFanOut above 1
// the calls run concurrently; results are stored by index so the slice keeps
// listing order either way. Only lookups that actually started are logged.
func (r *QueryRouter) fetchHistories(ctx context.Context, customers []model.Customer, t *trail) ([]customer.History, error) {
	histories := make([]customer.History, len(customers))
	if r.cfg.HistoryFanOut <= 1 {
		for i, c := range customers {
			t.add(TrailFetchHistoryOf, c.ID)
			h, err := r.data.GetCustomerHistory(ctx, c.ID)
			if err != nil {
				return nil, err
			}
			histories[i] = h
		}
		return histories, nil
	}

	// the trail is not safe for concurrent use, so goroutines only mark
	// their slot and the lines are written after Wait
	started := make([]bool, len(customers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.HistoryFanOut)
	for i, c := range customers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started[i] = true
			h, err := r.data.GetCustomerHistory(gctx, c.ID)
			if err != nil {
				return err
			}
			histories[i] = h
			return nil
		})
	}
	err := g.Wait()
	for i, c := range customers {
		if started[i] {
			t.add(TrailFetchHistoryOf, c.ID)
		}
	}
	if err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *QueryRouter) multiIntent(ctx context.Context, query string, t *trail) outcome {
	t.add(TrailMultiIntent, query)
	email, hasEmail := ExtractEmail(query)

	id, ok := ExtractCustomerID(withoutEmail(query))
	t.add(TrailExtractedID, formatID(id, ok))
	if !ok {
		id = r.cfg.DefaultCustomerID
		t.add(TrailDefaultID, id)
	}
	if hasEmail {
		t.add(TrailExtractedEmail, email)
	}

	extra := map[string]any{}
	var updated *model.Customer
	if hasEmail {
		t.add(TrailUpdateEmail, id)
		c, err := r.data.UpdateCustomer(ctx, customer.UpdateCustomerInput{
			ID:     id,
			Fields: map[string]string{"email": email},
		})
		if err != nil {
			return fail(err)
		}
		updated = &c
		extra[ExtraKeyUpdatedCustomer] = c
	}

	t.add(TrailFetchHistory)
	h, err := r.data.GetCustomerHistory(ctx, id)
	if err != nil {
		out := fail(err)
		if updated != nil {
			out.extra[ExtraKeyUpdatedCustomer] = *updated
		}
		return out
	}
	extra[ExtraKeyHistory] = h

	t.add(TrailCombinedReply)
	rep, err := r.support.UpdateAndHistoryReply(ctx, support.UpdateAndHistoryInput{
		Query:   query,
		Email:   email,
		Updated: updated,
		History: h,
	})
	if err != nil {
		return fail(err)
	}

	return outcome{
		reply:    rep.Text,
		extra:    extra,
		degraded: noteDegraded(t, "combined reply", rep),
	}
}

func (r *QueryRouter) fallback(query string, t *trail) outcome {
	t.add(TrailFallback, query)
	return outcome{reply: ReplyFallback, extra: map[string]any{}}
}
