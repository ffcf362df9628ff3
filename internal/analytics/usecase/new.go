package usecase

import (
	"monitor-srv/internal/analytics"
	"monitor-srv/internal/analytics/repository"
	postRepo "monitor-srv/internal/post/repository"
	"monitor-srv/pkg/log"
)

type implUseCase struct {
	posts postRepo.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory function
func New(l log.Logger, posts postRepo.PostgresRepository, cache repository.CacheRepository) analytics.UseCase {
	return &implUseCase{
		posts: posts,
		cache: cache,
		l:     l,
	}
}
