package analytics

import (
	"context"

	"monitor-srv/internal/analytics/engine"
	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetReport builds the full analytics report for the requested corpus,
	// serving from the snapshot cache when possible.
	GetReport(ctx context.Context, sc model.Scope, input ReportInput) (engine.Report, error)
	// Overview computes the lightweight dashboard summary.
	Overview(ctx context.Context, sc model.Scope, input ReportInput) (OverviewOutput, error)
}
