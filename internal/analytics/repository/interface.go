package repository

import (
	"context"

	"monitor-srv/internal/analytics/engine"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetReport returns the cached report for a params key, or nil on a miss.
	GetReport(ctx context.Context, paramsKey string) (*engine.Report, error)
	// SaveReport stores a report snapshot under a params key.
	SaveReport(ctx context.Context, paramsKey string, report engine.Report) error
	// InvalidateReports removes every cached report that covers a source.
	InvalidateReports(ctx context.Context, sourceID string) error
}
