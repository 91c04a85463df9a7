// Package scenariorun feeds the example queries through the router and
// writes a readable transcript.
package scenariorun

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"support-router/internal/router"
)

const ruleWidth = 80

// Queries are the example requests the router is exercised with.
var Queries = []string{
	"Get customer information for ID 5",
	"I'm customer 12345 and need help upgrading my account",
	"Show me all active customers who have open tickets",
	"I've been charged twice, please refund immediately!",
	"Update my email to new@email.com and show my ticket history",
	"I need help with my account, customer ID 1",
	"I want to cancel my subscription but I'm having billing issues, customer ID 1",
	"What's the status of all high-priority tickets for premium customers?",
}

// Run handles every query in order and writes one transcript block per
// query to w. It stops early only when ctx is done or w fails.
func Run(ctx context.Context, r router.Router, queries []string, w io.Writer) ([]router.Result, error) {
	results := make([]router.Result, 0, len(queries))
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.HandleQuery(ctx, q)
		results = append(results, res)

		block := Format(res)
		if i > 0 {
			block = "\n\n" + block
		}
		if _, err := io.WriteString(w, block); err != nil {
			return results, fmt.Errorf("scenariorun: write: %w", err)
		}
	}
	return results, nil
}

// Format renders one result as a transcript block.
func Format(res router.Result) string {
	rule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "USER QUERY: %s\n", res.Query)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "\n[Detected scenario]: %s\n\n", res.Scenario)

	if len(res.Logs) > 0 {
		b.WriteString("--- LOGS ---\n")
		for _, line := range res.Logs {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n--- FINAL RESPONSE ---\n")
	b.WriteString(res.FinalReply + "\n")

	if len(res.Extra) > 0 {
		b.WriteString("\n--- EXTRA DATA ---\n")
		extra, err := json.MarshalIndent(res.Extra, "", "  ")
		if err != nil {
			fmt.Fprintf(&b, "%v\n", res.Extra)
		} else {
			b.Write(extra)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}
