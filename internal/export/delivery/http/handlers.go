package http

import (
	"monitor-srv/pkg/response"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Request an export
// @Description Queue an HTML report export over a filtered corpus
// @Tags Export
// @Accept json
// @Produce json
// @Param body body requestExportReq true "Export request"
// @Success 200 {object} requestExportResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/exports [post]
func (h *handler) Request(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRequestRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Request: processRequestRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Request(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Request: usecase Request failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRequestExportResp(o))
}

// @Summary List my exports
// @Tags Export
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 15)"
// @Success 200 {object} listExportsResp
// @Router /api/v1/exports [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListExportsResp(o))
}

// @Summary Get export status
// @Tags Export
// @Produce json
// @Param export_id path string true "Export ID"
// @Success 200 {object} exportItem
// @Failure 404 {object} response.Resp
// @Router /api/v1/exports/{export_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	exp, err := h.uc.Get(ctx, sc, c.Param("export_id"))
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newExportItem(exp))
}

// @Summary Download an export
// @Description Presign a 30 minute download URL for a completed export
// @Tags Export
// @Produce json
// @Param export_id path string true "Export ID"
// @Success 200 {object} downloadExportResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/exports/{export_id}/download [get]
func (h *handler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Download(ctx, sc, c.Param("export_id"))
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Download: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newDownloadExportResp(o))
}
