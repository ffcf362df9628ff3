package http

import (
	"monitor-srv/internal/analytics/engine"
	"monitor-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Full analytics report
// @Description Build the complete report over the filtered corpus
// @Tags Analytics
// @Accept json
// @Produce json
// @Param source_ids query string false "Comma-separated source IDs"
// @Param date_from query int false "Unix seconds lower bound"
// @Param date_to query int false "Unix seconds upper bound"
// @Success 200 {object} engine.Report
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analytics/report [get]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Report: processReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	rep, err := h.uc.GetReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Report: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, rep)
}

// @Summary Dashboard overview
// @Description Summary counters, engagement and source breakdown
// @Tags Analytics
// @Produce json
// @Success 200 {object} overviewResp
// @Router /api/v1/analytics/overview [get]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Overview: processReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Overview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.Overview: usecase Overview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newOverviewResp(o))
}

// @Summary Posting time patterns
// @Tags Analytics
// @Produce json
// @Success 200 {object} engine.TimePatterns
// @Router /api/v1/analytics/time-patterns [get]
func (h *handler) TimePatterns(c *gin.Context) {
	h.reportSection(c, "TimePatterns", func(rep engine.Report) any { return rep.TimePatterns })
}

// @Summary Content analysis
// @Tags Analytics
// @Produce json
// @Success 200 {object} engine.ContentAnalysis
// @Router /api/v1/analytics/content [get]
func (h *handler) Content(c *gin.Context) {
	h.reportSection(c, "Content", func(rep engine.Report) any { return rep.Content })
}

// @Summary User analysis
// @Tags Analytics
// @Produce json
// @Success 200 {object} engine.UserAnalysis
// @Router /api/v1/analytics/users [get]
func (h *handler) Users(c *gin.Context) {
	h.reportSection(c, "Users", func(rep engine.Report) any { return rep.Users })
}

// @Summary Engagement analysis
// @Tags Analytics
// @Produce json
// @Success 200 {object} engine.EngagementAnalysis
// @Router /api/v1/analytics/engagement [get]
func (h *handler) Engagement(c *gin.Context) {
	h.reportSection(c, "Engagement", func(rep engine.Report) any { return rep.Engagement })
}

// @Summary Trend analysis
// @Tags Analytics
// @Produce json
// @Success 200 {object} engine.TrendAnalysis
// @Router /api/v1/analytics/trends [get]
func (h *handler) Trends(c *gin.Context) {
	h.reportSection(c, "Trends", func(rep engine.Report) any { return rep.Trends })
}

// reportSection serves one slice of the full report. Sections share the
// report snapshot cache, so hitting several section endpoints with the
// same filters computes the corpus once.
func (h *handler) reportSection(c *gin.Context, name string, pick func(engine.Report) any) {
	ctx := c.Request.Context()

	req, sc, err := h.processReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.%s: processReportRequest failed: %v", name, err)
		response.Error(c, err, h.discord)
		return
	}

	rep, err := h.uc.GetReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.%s: usecase GetReport failed: %v", name, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, pick(rep))
}
