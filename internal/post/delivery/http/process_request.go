package http

import (
	"strconv"
	"strings"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listPostsReq, model.Scope, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "15"), 10, 64)

	req := listPostsReq{
		AuthorID: c.Query("author_id"),
		Page:     page,
		Limit:    limit,
	}

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
			return req, model.Scope{}, err
		}
		t := time.Unix(sec, 0)
		req.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		sec, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, model.Scope{}, err
		}
		t := time.Unix(sec, 0)
		req.DateTo = &t
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
