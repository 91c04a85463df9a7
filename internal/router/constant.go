package router

// Log prefixes
const (
	LogPrefixHandleQuery = "internal.router.HandleQuery"
	LogPrefixClassify    = "internal.router.Classify"
)

// Router configuration
const (
	DefaultPremiumListLimit  = 100
	DefaultCustomerID        = 1
	DefaultFallbackScenario  = ScenarioFallback
	MinHistoryFanOut         = 1
	ExtraKeyCustomer         = "customer"
	ExtraKeyHistory          = "history"
	ExtraKeyTicket           = "ticket"
	ExtraKeyRows             = "rows"
	ExtraKeyUpdatedCustomer  = "updated_customer"
	ExtraKeyError            = "error"
	ExtraKeyDegraded         = "degraded"
	extractedCustomerIDEmpty = "none"
)

// Audit trail lines
const (
	TrailTaskAllocation   = "[router] Scenario 1: task allocation → '%s'"
	TrailNegotiation      = "[router] Scenario 2: negotiation → '%s'"
	TrailMultiStep        = "[router] Scenario 3: multi-step coordination → '%s'"
	TrailMultiIntent      = "[router] Scenario 4: multi-intent → '%s'"
	TrailFallback         = "[router] Fallback: no scenario matched → '%s'"
	TrailExtractedID      = "[router] Extracted customer_id=%s"
	TrailExtractedEmail   = "[router] Extracted email=%s"
	TrailFetchCustomer    = "[router] → [data-agent]: fetching customer %d"
	TrailTier             = "[router] Customer tier determined: %s"
	TrailAccountHelp      = "[router] → [support-agent]: generate response for %s customer"
	TrailInitialEval      = "[router] → [support-agent]: initial evaluation"
	TrailFetchHistory     = "[router] → [data-agent]: fetching customer history"
	TrailRefund           = "[router] → [support-agent]: build final refund/cancel response"
	TrailFetchPremium     = "[router] → [data-agent]: fetching premium customers"
	TrailFetchHistoryOf   = "[router] → [data-agent]: fetching history for customer %d"
	TrailReport           = "[router] → [support-agent]: generate high-priority ticket report"
	TrailDefaultID        = "[router] No customer id in query, using default customer_id=%d"
	TrailUpdateEmail      = "[router] → [data-agent]: updating email for customer %d"
	TrailCombinedReply    = "[router] → [support-agent]: generate combined update + history reply"
	TrailDegraded         = "[router] Reply generation failed, used template text for %s"
	TrailError            = "[router] Stopped: %v"
	TrailRecovered        = "[router] Recovered from internal failure: %v"
	TrailReplyStepsJoiner = "\n\n"
)

// Replies
const (
	ReplyCustomerIDMissing = "Customer ID missing."
	ReplyErrorPrefix       = "Error: "
	ReplyInternalError     = "Error: something went wrong while handling your request. Please try again."

	ReplyFallback = "I could not classify your request into a predefined scenario.\n" +
		"Try examples like:\n" +
		"- I need help with my account, customer ID 1\n" +
		"- I want to cancel my subscription but I'm having billing issues\n" +
		"- What's the status of all high-priority tickets for premium customers?\n"
)

// Metric outcomes
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeDegraded = "degraded"
	OutcomePanic    = "panic"
)
