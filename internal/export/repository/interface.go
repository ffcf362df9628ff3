package repository

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateExport(ctx context.Context, opt CreateExportOptions) (model.Export, error)
	GetExportByID(ctx context.Context, id string) (model.Export, error)
	FindByParamsHash(ctx context.Context, opt FindByParamsHashOptions) (*model.Export, error)
	UpdateCompleted(ctx context.Context, opt UpdateCompletedOptions) error
	UpdateFailed(ctx context.Context, opt UpdateFailedOptions) error
	ListExports(ctx context.Context, opt ListExportsOptions) ([]model.Export, error)
	CountExports(ctx context.Context, opt ListExportsOptions) (int64, error)
}
