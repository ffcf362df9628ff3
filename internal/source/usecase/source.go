package usecase

import (
	"context"
	"errors"

	"monitor-srv/internal/model"
	"monitor-srv/internal/source"
	"monitor-srv/internal/source/repository"
)

// Create registers a new monitored source. The Graph API token is
// encrypted before it touches the database and never leaves through
// the public API.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input source.CreateInput) (model.Source, error) {
	if !sc.IsAdmin() {
		return model.Source{}, source.ErrPermissionDenied
	}
	if input.Name == "" {
		return model.Source{}, source.ErrNameRequired
	}
	if input.AccessToken == "" {
		return model.Source{}, source.ErrTokenRequired
	}
	if input.Type != model.SourceTypePage && input.Type != model.SourceTypeGroup {
		return model.Source{}, source.ErrInvalidType
	}

	token, err := uc.enc.Encrypt(input.AccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.Create: Encrypt failed: %v", err)
		return model.Source{}, err
	}

	src, err := uc.repo.CreateSource(ctx, repository.CreateSourceOptions{
		Name:        input.Name,
		Type:        input.Type,
		AccessToken: token,
	})
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.Create: CreateSource failed: %v", err)
		return model.Source{}, err
	}

	return redactToken(src), nil
}

// Update renames a source or rotates its token.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input source.UpdateInput) (model.Source, error) {
	if !sc.IsAdmin() {
		return model.Source{}, source.ErrPermissionDenied
	}

	token := ""
	if input.AccessToken != "" {
		encrypted, err := uc.enc.Encrypt(input.AccessToken)
		if err != nil {
			uc.l.Errorf(ctx, "source.usecase.Update: Encrypt failed: %v", err)
			return model.Source{}, err
		}
		token = encrypted
	}

	src, err := uc.repo.UpdateSource(ctx, repository.UpdateSourceOptions{
		ID:          input.ID,
		Name:        input.Name,
		AccessToken: token,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Source{}, source.ErrSourceNotFound
		}
		uc.l.Errorf(ctx, "source.usecase.Update: UpdateSource failed: %v", err)
		return model.Source{}, err
	}

	return redactToken(src), nil
}

// List returns all sources without tokens.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Source, error) {
	sources, err := uc.repo.ListSources(ctx, repository.ListSourcesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.List: ListSources failed: %v", err)
		return nil, err
	}

	for i := range sources {
		sources[i] = redactToken(sources[i])
	}
	return sources, nil
}

// Detail returns one source without its token.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Source, error) {
	src, err := uc.repo.GetSourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Source{}, source.ErrSourceNotFound
		}
		uc.l.Errorf(ctx, "source.usecase.Detail: GetSourceByID failed: %v", err)
		return model.Source{}, err
	}
	return redactToken(src), nil
}

// Deactivate soft-deletes a source. Its posts stay in the corpus.
func (uc *implUseCase) Deactivate(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return source.ErrPermissionDenied
	}

	if err := uc.repo.DeactivateSource(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return source.ErrSourceNotFound
		}
		uc.l.Errorf(ctx, "source.usecase.Deactivate: DeactivateSource failed: %v", err)
		return err
	}
	return nil
}

// ListActive returns active sources with decrypted tokens for the
// collector. Reached only through the internal-key route.
func (uc *implUseCase) ListActive(ctx context.Context, sc model.Scope) ([]model.Source, error) {
	sources, err := uc.repo.ListSources(ctx, repository.ListSourcesOptions{ActiveOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "source.usecase.ListActive: ListSources failed: %v", err)
		return nil, err
	}

	for i := range sources {
		token, err := uc.enc.Decrypt(sources[i].AccessToken)
		if err != nil {
			uc.l.Errorf(ctx, "source.usecase.ListActive: Decrypt failed for source %s: %v", sources[i].ID, err)
			return nil, err
		}
		sources[i].AccessToken = token
	}
	return sources, nil
}

func redactToken(src model.Source) model.Source {
	src.AccessToken = ""
	return src
}
