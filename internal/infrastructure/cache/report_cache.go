package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tradeconsole/backend/internal/domain/report"
)

const keyPrefix = "report:"

// ReportCache is a Redis-backed cache for shaped report results. It is
// strictly a performance layer: every failure degrades to a miss and
// the report is recomputed from source.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewReportCache creates a report cache with the given TTL
func NewReportCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ReportCache {
	return &ReportCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached result for key, or a miss.
func (c *ReportCache) Get(ctx context.Context, key string) (*report.ReportResult, bool) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var result report.ReportResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn("report cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &result, true
}

// Set stores a shaped result under key for the configured TTL.
func (c *ReportCache) Set(ctx context.Context, key string, result *report.ReportResult) {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("report cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
