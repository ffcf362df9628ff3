package http

import (
	"strconv"
	"strings"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processReportRequest(c *gin.Context) (reportReq, model.Scope, error) {
	var req reportReq

	if raw := c.Query("source_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.SourceIDs = append(req.SourceIDs, id)
			}
		}
	}
	if raw := c.Query("date_from"); raw != "" {
		sec, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, model.Scope{}, errInvalidDate
		}
		t := time.Unix(sec, 0)
		req.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		sec, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, model.Scope{}, errInvalidDate
		}
		t := time.Unix(sec, 0)
		req.DateTo = &t
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
