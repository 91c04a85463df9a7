package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "support-router/pkg/errors"
)

var errEmptyQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "query is required")

func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "router.http.processQueryReq: %v", err)
		return queryReq{}, errEmptyQuery
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return queryReq{}, errEmptyQuery
	}
	return req, nil
}
