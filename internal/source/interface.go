package source

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Source, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Source, error)
	List(ctx context.Context, sc model.Scope) ([]model.Source, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Source, error)
	Deactivate(ctx context.Context, sc model.Scope, id string) error
	// ListActive returns active sources with decrypted access tokens.
	// Only the collector service path may call it.
	ListActive(ctx context.Context, sc model.Scope) ([]model.Source, error)
}
