package http

import (
	"support-router/internal/customer"
	"support-router/internal/model"
	"support-router/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,max=32"`
	Limit  int    `form:"limit"  binding:"omitempty,min=0,max=500"`
}

func (r listReq) toInput() customer.ListCustomersInput {
	return customer.ListCustomersInput{Status: r.Status, Limit: r.Limit}
}

// updateReq is a free-form partial update; unknown keys are dropped by the use case.
type updateReq map[string]string

type createTicketReq struct {
	CustomerID int64  `json:"customer_id" binding:"required,min=1"`
	Issue      string `json:"issue"       binding:"required"`
	Priority   string `json:"priority"    binding:"required"`
}

func (r createTicketReq) toInput() customer.CreateTicketInput {
	return customer.CreateTicketInput{
		CustomerID: r.CustomerID,
		Issue:      r.Issue,
		Priority:   r.Priority,
	}
}

// --- Response DTOs ---

type customerResp struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Status    string            `json:"status"`
	Tier      string            `json:"tier"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newCustomerResp(c model.Customer) customerResp {
	return customerResp{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    string(c.Status),
		Tier:      string(c.Tier()),
		CreatedAt: response.DateTime(c.CreatedAt),
		UpdatedAt: response.DateTime(c.UpdatedAt),
	}
}

type ticketResp struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Issue      string            `json:"issue"`
	Status     string            `json:"status"`
	Priority   string            `json:"priority"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newTicketResp(t model.Ticket) ticketResp {
	return ticketResp{
		ID:         t.ID,
		CustomerID: t.CustomerID,
		Issue:      t.Issue,
		Status:     string(t.Status),
		Priority:   string(t.Priority),
		CreatedAt:  response.DateTime(t.CreatedAt),
	}
}

type listResp struct {
	Customers []customerResp `json:"customers"`
}

func (h *handler) newListResp(customers []model.Customer) listResp {
	out := make([]customerResp, len(customers))
	for i, c := range customers {
		out[i] = newCustomerResp(c)
	}
	return listResp{Customers: out}
}

type historyResp struct {
	Customer customerResp `json:"customer"`
	Tickets  []ticketResp `json:"tickets"`
}

func (h *handler) newHistoryResp(hist customer.History) historyResp {
	tickets := make([]ticketResp, len(hist.Tickets))
	for i, t := range hist.Tickets {
		tickets[i] = newTicketResp(t)
	}
	return historyResp{Customer: newCustomerResp(hist.Customer), Tickets: tickets}
}
