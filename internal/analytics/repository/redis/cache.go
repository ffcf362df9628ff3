package redis

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"monitor-srv/internal/analytics/engine"
)

const reportCacheTTL = 5 * time.Minute

// GetReport retrieves a cached report snapshot by params key.
// A cache miss returns (nil, nil).
func (r *implCacheRepository) GetReport(ctx context.Context, paramsKey string) (*engine.Report, error) {
	key := reportCacheKey(paramsKey)

	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		r.l.Errorf(ctx, "analytics.repository.redis.GetReport: Failed to get report from cache: %v", err)
		return nil, err
	}

	var report engine.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		r.l.Errorf(ctx, "analytics.repository.redis.GetReport: Failed to unmarshal report from cache: %v", err)
		return nil, err
	}

	return &report, nil
}

// SaveReport stores a report snapshot in cache with a fixed TTL.
func (r *implCacheRepository) SaveReport(ctx context.Context, paramsKey string, report engine.Report) error {
	key := reportCacheKey(paramsKey)

	data, err := json.Marshal(report)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.redis.SaveReport: Failed to marshal report: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, key, string(data), reportCacheTTL); err != nil {
		r.l.Errorf(ctx, "analytics.repository.redis.SaveReport: Failed to set report in cache: %v", err)
		return err
	}
	return nil
}

// InvalidateReports removes all report cache keys covering a source
// using Redis SCAN + pipelined DELETE. Unfiltered reports cover every
// source, so they are dropped on any ingest.
func (r *implCacheRepository) InvalidateReports(ctx context.Context, sourceID string) error {
	patterns := []string{
		fmt.Sprintf("analytics:*%s*", sourceID),
		fmt.Sprintf("analytics:report:%s:*", allSourcesKeyPart),
	}
	for _, pattern := range patterns {
		if err := r.deleteByPattern(ctx, pattern); err != nil {
			return err
		}
	}
	return nil
}

func (r *implCacheRepository) deleteByPattern(ctx context.Context, pattern string) error {
	client := r.redis.GetClient()

	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			r.l.Errorf(ctx, "analytics.repository.redis.InvalidateReports: Failed to scan cache: %v", err)
			return err
		}

		if len(keys) > 0 {
			pipe := client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil && err != goredis.Nil {
				r.l.Errorf(ctx, "analytics.repository.redis.InvalidateReports: Failed to execute pipeline: %v", err)
				return err
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

// reportCacheKey generates a Redis key from a params key.
func reportCacheKey(paramsKey string) string {
	return fmt.Sprintf("analytics:report:%s", paramsKey)
}

// allSourcesKeyPart marks snapshots computed without a source filter.
const allSourcesKeyPart = "all"

// ParamsKey builds a cache key part from normalized report parameters.
// Source IDs are embedded verbatim so per-source invalidation can match
// them with a SCAN pattern; an empty filter gets the "all" marker so
// those snapshots are still reachable by invalidation.
func ParamsKey(sourceIDs []string, dateFrom, dateTo *time.Time) string {
	from, to := int64(0), int64(0)
	if dateFrom != nil {
		from = dateFrom.Unix()
	}
	if dateTo != nil {
		to = dateTo.Unix()
	}

	prefix := strings.Join(sourceIDs, ",")
	if prefix == "" {
		prefix = allSourcesKeyPart
	}

	raw := fmt.Sprintf("%s|%d|%d", strings.Join(sourceIDs, ","), from, to)
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%s:%x", prefix, hash)
}
