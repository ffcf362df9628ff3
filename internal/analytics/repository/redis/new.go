package redis

import (
	repo "monitor-srv/internal/analytics/repository"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/redis"
)

type implCacheRepository struct {
	redis redis.IRedis
	l     log.Logger
}

// New creates a new CacheRepository backed by Redis.
func New(redis redis.IRedis, l log.Logger) repo.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
