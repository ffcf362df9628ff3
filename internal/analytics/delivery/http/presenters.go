package http

import (
	"time"

	"monitor-srv/internal/analytics"
	"monitor-srv/internal/analytics/engine"
)

type reportReq struct {
	SourceIDs []string
	DateFrom  *time.Time
	DateTo    *time.Time
}

func (r reportReq) toInput() analytics.ReportInput {
	return analytics.ReportInput{
		SourceIDs: r.SourceIDs,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
	}
}

type overviewResp struct {
	Basic      engine.BasicStats         `json:"basicStats"`
	Engagement engine.EngagementAnalysis `json:"engagementAnalysis"`
	Sources    engine.SourceAnalysis     `json:"sourceAnalysis"`
}

func newOverviewResp(o analytics.OverviewOutput) overviewResp {
	return overviewResp{
		Basic:      o.Basic,
		Engagement: o.Engagement,
		Sources:    o.Sources,
	}
}
