package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createSourceReq, model.Scope, error) {
	var req createSourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUpdateRequest(c *gin.Context) (updateSourceReq, model.Scope, error) {
	var req updateSourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}
	req.ID = c.Param("source_id")

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
