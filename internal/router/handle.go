package router

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"support-router/internal/metrics"
	"support-router/pkg/log"
)

// outcome is what a scenario handler hands back to HandleQuery.
type outcome struct {
	reply    string
	extra    map[string]any
	err      error
	degraded bool
}

// HandleQuery classifies query and runs its scenario. It never fails: data
// errors, generator failures and panics all end up in FinalReply.
func (r *QueryRouter) HandleQuery(ctx context.Context, query string) (res Result) {
	requestID := log.TraceIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = log.WithTraceID(ctx, requestID)
	}

	start := time.Now()
	scenario := r.Classify(query)
	t := newTrail(ctx, r.l)
	r.l.Infof(ctx, "%s: classified as %s", LogPrefixHandleQuery, scenario)

	res = Result{
		RequestID: requestID,
		Query:     query,
		Scenario:  scenario,
		Extra:     map[string]any{},
	}

	defer func() {
		status := OutcomeOK
		if p := recover(); p != nil {
			r.l.Errorf(ctx, "%s: recovered panic in %s: %v", LogPrefixHandleQuery, scenario, p)
			t.add(TrailRecovered, p)
			res.FinalReply = ReplyInternalError
			res.Extra = map[string]any{ExtraKeyError: fmt.Sprint(p)}
			status = OutcomePanic
		}
		res.Logs = t.snapshot()
		if status == OutcomeOK {
			status = outcomeLabel(res)
		}
		metrics.QueriesTotal.WithLabelValues(string(scenario), status).Inc()
		metrics.QueryDuration.WithLabelValues(string(scenario)).Observe(time.Since(start).Seconds())
	}()

	out := r.dispatch(ctx, scenario, query, t)
	if out.extra == nil {
		out.extra = map[string]any{}
	}
	if out.err != nil {
		t.add(TrailError, out.err)
		r.l.Warnf(ctx, "%s: %s stopped: %v", LogPrefixHandleQuery, scenario, out.err)
		out.reply = ReplyErrorPrefix + out.err.Error()
		out.extra[ExtraKeyError] = out.err.Error()
	}

	res.FinalReply = out.reply
	res.Extra = out.extra
	if out.degraded {
		res.Extra[ExtraKeyDegraded] = true
	}
	return res
}

func outcomeLabel(res Result) string {
	if _, ok := res.Extra[ExtraKeyError]; ok {
		return OutcomeError
	}
	if _, ok := res.Extra[ExtraKeyDegraded]; ok {
		return OutcomeDegraded
	}
	return OutcomeOK
}

func (r *QueryRouter) dispatch(ctx context.Context, scenario Scenario, query string, t *trail) outcome {
	switch scenario {
	case ScenarioNegotiationEscalation:
		return r.negotiation(ctx, query, t)
	case ScenarioTaskAllocation:
		return r.taskAllocation(ctx, query, t)
	case ScenarioMultiStepCoordination:
		return r.multiStep(ctx, query, t)
	case ScenarioMultiIntent:
		return r.multiIntent(ctx, query, t)
	default:
		return r.fallback(query, t)
	}
}
