package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processID parses the :id path parameter.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the partial update body. An empty object is
// passed through so the use case reports it.
func (h *handler) processUpdateReq(c *gin.Context) (int64, updateReq, error) {
	id, err := h.processID(c)
	if err != nil {
		return 0, nil, err
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, nil, err
	}
	return id, req, nil
}

func (h *handler) processCreateTicketReq(c *gin.Context) (createTicketReq, error) {
	var req createTicketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
