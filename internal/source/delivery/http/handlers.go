package http

import (
	"monitor-srv/pkg/response"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Register a source
// @Description Add a Facebook page or group to monitor
// @Tags Source
// @Accept json
// @Produce json
// @Param body body createSourceReq true "Source descriptor"
// @Success 200 {object} sourceItem
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/sources [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	src, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSourceItem(src))
}

// @Summary List sources
// @Tags Source
// @Produce json
// @Success 200 {object} listSourcesResp
// @Router /api/v1/sources [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	sources, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListSourcesResp(sources))
}

// @Summary Get one source
// @Tags Source
// @Produce json
// @Param source_id path string true "Source ID"
// @Success 200 {object} sourceItem
// @Failure 404 {object} response.Resp
// @Router /api/v1/sources/{source_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	src, err := h.uc.Detail(ctx, sc, c.Param("source_id"))
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSourceItem(src))
}

// @Summary Update a source
// @Description Rename a source or rotate its access token
// @Tags Source
// @Accept json
// @Produce json
// @Param source_id path string true "Source ID"
// @Param body body updateSourceReq true "Fields to update"
// @Success 200 {object} sourceItem
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sources/{source_id} [patch]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Update: processUpdateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	src, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSourceItem(src))
}

// @Summary Deactivate a source
// @Description Stop collecting from a source without dropping its posts
// @Tags Source
// @Produce json
// @Param source_id path string true "Source ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/sources/{source_id} [delete]
func (h *handler) Deactivate(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Deactivate(ctx, sc, c.Param("source_id")); err != nil {
		h.l.Errorf(ctx, "source.delivery.http.Deactivate: usecase Deactivate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Active sources for the collector
// @Description Internal listing with decrypted access tokens
// @Tags Source
// @Produce json
// @Success 200 {object} listInternalSourcesResp
// @Router /internal/sources [get]
func (h *handler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	sources, err := h.uc.ListActive(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "source.delivery.http.ListActive: usecase ListActive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListInternalSourcesResp(sources))
}
