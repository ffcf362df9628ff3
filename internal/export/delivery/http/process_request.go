package http

import (
	"strconv"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processRequestRequest(c *gin.Context) (requestExportReq, model.Scope, error) {
	var req requestExportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListRequest(c *gin.Context) (listExportsReq, model.Scope, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "15"), 10, 64)

	req := listExportsReq{
		Page:  page,
		Limit: limit,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
