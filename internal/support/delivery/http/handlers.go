package http

import (
	"github.com/gin-gonic/gin"

	"support-router/pkg/response"
)

// Upgrade godoc
// @Summary     Request an account upgrade
// @Description Confirms the customer and opens a high-priority "Account upgrade request" ticket.
// @Tags        Support
// @Accept      json
// @Produce     json
// @Param       body body upgradeReq true "Upgrade request"
// @Success     200 {object} upgradeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Customer Not Found"
// @Router      /api/v1/support/upgrade [POST]
func (h *handler) Upgrade(c *gin.Context) {
	ctx := c.Request.Context()

	var req upgradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "support.http.Upgrade: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	rep, err := h.uc.UpgradeRequest(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpgradeRequest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUpgradeResp(rep))
}
