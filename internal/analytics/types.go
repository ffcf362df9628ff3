package analytics

import (
	"time"

	"monitor-srv/internal/analytics/engine"
)

const (
	// MaxCorpusSize caps the number of posts loaded into one report.
	MaxCorpusSize = 10000
	// MaxSourceFilter caps the number of source IDs in one request.
	MaxSourceFilter = 50
)

type ReportInput struct {
	SourceIDs []string
	DateFrom  *time.Time
	DateTo    *time.Time
}

type OverviewOutput struct {
	Basic      engine.BasicStats
	Engagement engine.EngagementAnalysis
	Sources    engine.SourceAnalysis
}
