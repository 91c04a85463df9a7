package support

import "context"

// UseCase assembles scenario replies from fetched data. Ticket creation is
// the only side effect, and only where an operation says so.
type UseCase interface {
	AccountHelp(ctx context.Context, input AccountHelpInput) (Reply, error)
	UpgradeRequest(ctx context.Context, input UpgradeRequestInput) (Reply, error)
	EvaluateBillingAndCancel(ctx context.Context, input EvaluateInput) (Reply, error)
	BuildRefundResponse(ctx context.Context, input RefundInput) (Reply, error)
	HighPriorityReport(ctx context.Context, input ReportInput) (Reply, error)
	UpdateAndHistoryReply(ctx context.Context, input UpdateAndHistoryInput) (Reply, error)
}
