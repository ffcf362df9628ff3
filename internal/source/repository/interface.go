package repository

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateSource(ctx context.Context, opt CreateSourceOptions) (model.Source, error)
	UpdateSource(ctx context.Context, opt UpdateSourceOptions) (model.Source, error)
	GetSourceByID(ctx context.Context, id string) (model.Source, error)
	ListSources(ctx context.Context, opt ListSourcesOptions) ([]model.Source, error)
	DeactivateSource(ctx context.Context, id string) error
}
