package http

import (
	"github.com/gin-gonic/gin"

	"support-router/internal/customer"
	"support-router/pkg/response"
)

// List godoc
// @Summary     List customers
// @Description Returns customers ordered by id with an optional status filter.
// @Tags        Customers
// @Produce     json
// @Param       status query string false "Filter by status (active/disabled)"
// @Param       limit  query int    false "Maximum rows (default: 20)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/customers [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	customers, err := h.uc.ListCustomers(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCustomers: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(customers))
}

// Detail godoc
// @Summary     Get customer
// @Tags        Customers
// @Produce     json
// @Param       id path int true "Customer ID"
// @Success     200 {object} customerResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/customers/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cust, err := h.uc.GetCustomer(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetCustomer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCustomerResp(cust))
}

// Update godoc
// @Summary     Update customer
// @Description Partial update of name, email, phone or status. Other keys are ignored.
// @Tags        Customers
// @Accept      json
// @Produce     json
// @Param       id   path int               true "Customer ID"
// @Param       body body map[string]string true "Fields to update"
// @Success     200 {object} customerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/customers/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cust, err := h.uc.UpdateCustomer(ctx, customer.UpdateCustomerInput{ID: id, Fields: req})
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateCustomer: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCustomerResp(cust))
}

// History godoc
// @Summary     Customer history
// @Description Returns the customer and its tickets, newest first.
// @Tags        Customers
// @Produce     json
// @Param       id path int true "Customer ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/customers/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	hist, err := h.uc.GetCustomerHistory(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetCustomerHistory: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(hist))
}

// CreateTicket godoc
// @Summary     Create ticket
// @Tags        Tickets
// @Accept      json
// @Produce     json
// @Param       body body createTicketReq true "Ticket"
// @Success     200 {object} ticketResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Customer Not Found"
// @Router      /api/v1/tickets [POST]
func (h *handler) CreateTicket(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTicketReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.CreateTicket(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateTicket: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTicketResp(t))
}
