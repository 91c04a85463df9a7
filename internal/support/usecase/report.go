package usecase

import (
	"context"
	"fmt"
	"strings"

	"support-router/internal/support"
	"support-router/internal/support/strategy"
)

// HighPriorityReport lists customers with at least one high-priority ticket,
// in the order the histories were given.
func (uc *implUseCase) HighPriorityReport(ctx context.Context, input support.ReportInput) (support.Reply, error) {
	rows := make([]support.ReportRow, 0, len(input.Histories))
	for _, h := range input.Histories {
		high := h.HighPriority()
		if len(high) == 0 {
			continue
		}
		ids := make([]int64, 0, len(high))
		for _, t := range high {
			ids = append(ids, t.ID)
		}
		rows = append(rows, support.ReportRow{
			CustomerID:   h.Customer.ID,
			CustomerName: h.Customer.Name,
			HighPriority: len(high),
			TicketIDs:    ids,
		})
	}

	report := formatReport(rows)
	res := uc.strategy.Render(ctx, strategy.Draft{
		Operation: OpReport,
		Template:  report,
		Prompt:    fmt.Sprintf(PromptReport, report),
	})
	uc.l.Debugf(ctx, "%s: %d of %d customers reported", LogPrefixReport, len(rows), len(input.Histories))

	return support.Reply{Text: res.Text, Degraded: res.Degraded, Rows: rows}, nil
}

func formatReport(rows []support.ReportRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, TmplReportHeader)
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf(TmplReportLine, r.CustomerName, r.CustomerID, r.HighPriority))
	}
	if len(rows) == 0 {
		lines = append(lines, TmplReportEmpty)
	}
	return strings.Join(lines, "\n")
}
