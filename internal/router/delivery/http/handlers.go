package http

import (
	"github.com/gin-gonic/gin"

	"support-router/pkg/response"
)

// Query godoc
// @Summary     Route a support query
// @Description Classifies a free-text query, runs the matching scenario and returns the audit trail with the final reply. Data errors are reported inside final_reply, not as HTTP errors.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Query"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/router/query [POST]
func (h *handler) Query(c *gin.Context) {
	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res := h.router.HandleQuery(c.Request.Context(), req.Query)
	response.OK(c, newQueryResp(res))
}
