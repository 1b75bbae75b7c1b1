package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the redis connection backing the dashboard summary cache.
// A server that cannot reach redis should not come up at all, so the
// connection is pinged before it is handed to the cache.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
