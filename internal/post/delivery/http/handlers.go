package http

import (
	"monitor-srv/pkg/response"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List ingested posts
// @Description Paginate the post corpus with source and date filters
// @Tags Post
// @Accept json
// @Produce json
// @Param source_ids query string false "Comma-separated source IDs"
// @Param date_from query int false "Unix seconds lower bound"
// @Param date_to query int false "Unix seconds upper bound"
// @Param author_id query string false "Author ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 15)"
// @Success 200 {object} listPostsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/posts [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListPostsResp(o))
}

// @Summary Get one post
// @Description Fetch a single post with its raw engagement payloads
// @Tags Post
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} postItem
// @Failure 404 {object} response.Resp
// @Router /api/v1/posts/{post_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	p, err := h.uc.Detail(ctx, sc, c.Param("post_id"))
	if err != nil {
		h.l.Errorf(ctx, "post.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPostItem(p))
}
