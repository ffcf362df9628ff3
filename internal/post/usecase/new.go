package usecase

import (
	"monitor-srv/internal/analytics/repository"
	"monitor-srv/internal/post"
	postRepo "monitor-srv/internal/post/repository"
	"monitor-srv/pkg/log"
)

type implUseCase struct {
	repo  postRepo.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory function
func New(
	repo postRepo.PostgresRepository,
	cache repository.CacheRepository,
	l log.Logger,
) post.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
