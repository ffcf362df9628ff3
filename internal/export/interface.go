package export

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Request queues an HTML export job, deduplicating on identical params.
	Request(ctx context.Context, sc model.Scope, input RequestInput) (RequestOutput, error)
	Get(ctx context.Context, sc model.Scope, exportID string) (model.Export, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Download(ctx context.Context, sc model.Scope, exportID string) (DownloadOutput, error)
	// Process runs one export job to completion. Called by the worker.
	Process(ctx context.Context, sc model.Scope, exportID string) error
}
