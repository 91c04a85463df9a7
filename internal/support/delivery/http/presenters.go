package http

import (
	"support-router/internal/support"
	"support-router/pkg/response"
)

type upgradeReq struct {
	CustomerID int64  `json:"customer_id" binding:"required,min=1"`
	Query      string `json:"query"       binding:"max=2000"`
}

func (r upgradeReq) toInput() support.UpgradeRequestInput {
	return support.UpgradeRequestInput{CustomerID: r.CustomerID, Query: r.Query}
}

type ticketResp struct {
	ID        int64             `json:"id"`
	Issue     string            `json:"issue"`
	Priority  string            `json:"priority"`
	Status    string            `json:"status"`
	CreatedAt response.DateTime `json:"created_at"`
}

type upgradeResp struct {
	Reply    string      `json:"reply"`
	Degraded bool        `json:"degraded"`
	Ticket   *ticketResp `json:"ticket,omitempty"`
}

func newUpgradeResp(r support.Reply) upgradeResp {
	resp := upgradeResp{Reply: r.Text, Degraded: r.Degraded}
	if r.Ticket != nil {
		resp.Ticket = &ticketResp{
			ID:        r.Ticket.ID,
			Issue:     r.Ticket.Issue,
			Priority:  string(r.Ticket.Priority),
			Status:    string(r.Ticket.Status),
			CreatedAt: response.DateTime(r.Ticket.CreatedAt),
		}
	}
	return resp
}
