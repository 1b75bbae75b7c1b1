package infra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// summaryKeyPattern matches every dashboard summary key; Invalidate drops
// them all so a mutation to any entity refreshes the whole dashboard.
const summaryKeyPattern = "dashboard:*"

// SummaryCache is the redis-backed implementation of service.SummaryCache.
// Cache failures are soft: a broken redis degrades to querying the DB on
// every dashboard load, it never fails a request.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

func (c *SummaryCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *SummaryCache) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *SummaryCache) Invalidate(ctx context.Context) error {
	keys, err := c.rdb.Keys(ctx, summaryKeyPattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("dashboard cache invalidation failed")
		return err
	}
	return nil
}
