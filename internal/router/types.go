package router

// Scenario is the intent a query was classified into.
type Scenario string

const (
	ScenarioTaskAllocation        Scenario = "task_allocation"
	ScenarioNegotiationEscalation Scenario = "negotiation_escalation"
	ScenarioMultiStepCoordination Scenario = "multi_step_coordination"
	ScenarioMultiIntent           Scenario = "multi_intent"
	ScenarioFallback              Scenario = "fallback"
)

// Result is the self-contained outcome of one HandleQuery call.
type Result struct {
	RequestID  string         `json:"request_id"`
	Query      string         `json:"query"`
	Scenario   Scenario       `json:"scenario"`
	Logs       []string       `json:"logs"`
	FinalReply string         `json:"final_reply"`
	Extra      map[string]any `json:"extra"`
}

// Config tunes classification and scenario handling.
type Config struct {
	// FallbackScenario is used when no rule matches: fallback or task_allocation.
	FallbackScenario Scenario
	// DefaultCustomerID stands in for a missing id in multi_intent queries.
	DefaultCustomerID int64
	// PremiumListLimit caps the customers listed for the report.
	PremiumListLimit int
	// HistoryFanOut bounds concurrent history fetches; 1 is sequential.
	HistoryFanOut int
}
