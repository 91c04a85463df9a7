package usecase

// Log prefixes
const (
	LogPrefixAccountHelp      = "internal.support.usecase.AccountHelp"
	LogPrefixUpgradeRequest   = "internal.support.usecase.UpgradeRequest"
	LogPrefixEvaluate         = "internal.support.usecase.EvaluateBillingAndCancel"
	LogPrefixRefundResponse   = "internal.support.usecase.BuildRefundResponse"
	LogPrefixReport           = "internal.support.usecase.HighPriorityReport"
	LogPrefixUpdateAndHistory = "internal.support.usecase.UpdateAndHistoryReply"
)

// Operations, used as metric labels
const (
	OpAccountHelp      = "account_help"
	OpUpgradeRequest   = "upgrade_request"
	OpEvaluate         = "billing_evaluation"
	OpRefundResponse   = "refund_response"
	OpReport           = "high_priority_report"
	OpUpdateAndHistory = "update_and_history"
)

// Tickets opened by the orchestrator
const (
	IssueUpgradeRequest = "Account upgrade request"
	IssueBillingCancel  = "Billing issue + cancellation request"
)

// Reply templates
const (
	TmplAccountHelp = "Customer found: %s (status: %s). You said: '%s'. " +
		"I can help you with account status, upgrades, or creating a support ticket."

	TmplUpgrade = "Confirmed customer %s (ID %d). I can create a high-priority ticket for the upgrade request."

	TmplNeedCustomerID = "I need your customer ID to look up billing and cancellation information."

	TmplEvaluation = "Confirmed customer %s. This request involves both cancellation and billing issues. " +
		"I need billing history to provide a proper recommendation."

	TmplRefund = "Customer %s (ID %d) has %d tickets, with %d unresolved high-priority issues. " +
		"Given your billing message, I recommend:\n" +
		"1. Creating a high-priority ticket for the billing + cancellation issue.\n" +
		"2. Reviewing charges for potential refunds.\n" +
		"3. Pausing further billing until the issue is resolved."

	TmplReportHeader = "High-Priority Ticket Report (Premium Customers):"
	TmplReportLine   = "- %s (ID %d): %d high-priority tickets"
	TmplReportEmpty  = "No premium customers currently have high-priority tickets."

	TmplEmailUpdated   = "I updated the email for %s (ID %d) to %s."
	TmplEmailNotFound  = "I did not find an email address in your message, so no contact details were changed."
	TmplHistoryHeader  = "Ticket history for %s (ID %d), %d tickets:"
	TmplHistoryLine    = "- #%d [%s, %s] %s"
	TmplHistoryNoItems = "There are no tickets on record."
)

// Generator prompts
const (
	PromptAccountHelp = `A customer wrote: "%s"
Customer record: name=%s, status=%s, tier=%s.
Write a short reply confirming the account and offering help with account status, upgrades, or opening a support ticket.`

	PromptUpgrade = `A customer wrote: "%s"
Customer record: name=%s, id=%d, status=%s.
A high-priority ticket "%s" (id %d) was just opened. Confirm the upgrade request and mention the ticket.`

	PromptEvaluation = `A customer wrote: "%s"
Customer record: name=%s, status=%s.
The message mixes a cancellation with a billing problem. Acknowledge both and say you are pulling their billing history before recommending next steps.`

	PromptRefund = `A customer wrote: "%s"
Customer %s (id %d) has %d tickets, %d of them unresolved and high priority.
A high-priority ticket "%s" was opened. Recommend, as a numbered list: the new ticket, a review of charges for refunds, and pausing billing until resolved.`

	PromptReport = `Summarize this report of premium customers with high-priority tickets for a support lead. Keep every customer and every number exactly as given.
%s`

	PromptUpdateAndHistory = `A customer wrote: "%s"
Email found in the message: %s
Update result: %s
Ticket history:
%s
Write one reply that first confirms the contact update (or says nothing changed) and then summarizes the ticket history.`
)
