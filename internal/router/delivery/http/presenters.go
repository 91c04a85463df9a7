package http

import "support-router/internal/router"

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query" binding:"required,max=2000"`
}

// --- Response DTOs ---

type queryResp struct {
	RequestID  string         `json:"request_id"`
	Query      string         `json:"query"`
	Scenario   string         `json:"scenario"`
	Logs       []string       `json:"logs"`
	FinalReply string         `json:"final_reply"`
	Extra      map[string]any `json:"extra,omitempty"`
}

func newQueryResp(res router.Result) queryResp {
	return queryResp{
		RequestID:  res.RequestID,
		Query:      res.Query,
		Scenario:   string(res.Scenario),
		Logs:       res.Logs,
		FinalReply: res.FinalReply,
		Extra:      res.Extra,
	}
}
