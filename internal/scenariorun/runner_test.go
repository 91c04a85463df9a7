package scenariorun

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"support-router/internal/customer/repository/memory"
	customerUC "support-router/internal/customer/usecase"
	"support-router/internal/router"
	"support-router/internal/support/strategy"
	supportUC "support-router/internal/support/usecase"
	"support-router/pkg/log"
)

func newRouter() router.Router {
	store := memory.New(log.NewNop())
	store.Seed()
	data := customerUC.New(store, nil, log.NewNop())
	return router.New(data, supportUC.New(data, strategy.NewTemplate(), log.NewNop()), router.Config{}, log.NewNop())
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	results, err := Run(context.Background(), newRouter(), Queries, &buf)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != len(Queries) {
		t.Fatalf("expected %d results, got %d", len(Queries), len(results))
	}

	want := []router.Scenario{
		router.ScenarioTaskAllocation,
		router.ScenarioTaskAllocation,
		router.ScenarioFallback,
		router.ScenarioFallback,
		router.ScenarioMultiIntent,
		router.ScenarioTaskAllocation,
		router.ScenarioNegotiationEscalation,
		router.ScenarioMultiStepCoordination,
	}
	for i, res := range results {
		if res.Scenario != want[i] {
			t.Errorf("query %d %q: expected %s, got %s", i, res.Query, want[i], res.Scenario)
		}
	}

	if !strings.Contains(results[1].FinalReply, "customer not found: id 12345") {
		t.Errorf("unknown customer should surface as a reply, got %q", results[1].FinalReply)
	}

	out := buf.String()
	if strings.Count(out, "USER QUERY: ") != len(Queries) {
		t.Errorf("expected one block per query")
	}
	for _, part := range []string{"[Detected scenario]: negotiation_escalation", "--- LOGS ---", "--- FINAL RESPONSE ---", "--- EXTRA DATA ---"} {
		if !strings.Contains(out, part) {
			t.Errorf("transcript missing %q", part)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	results, err := Run(ctx, newRouter(), Queries, &buf)
	if err == nil || len(results) != 0 || buf.Len() != 0 {
		t.Errorf("expected no work after cancel, got %d results, err %v", len(results), err)
	}
}

func TestFormatOmitsEmptySections(t *testing.T) {
	out := Format(router.Result{Query: "q", Scenario: router.ScenarioFallback, FinalReply: "r"})
	if strings.Contains(out, "--- LOGS ---") || strings.Contains(out, "--- EXTRA DATA ---") {
		t.Errorf("empty sections should be omitted:\n%s", out)
	}
}
