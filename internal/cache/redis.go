package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis backs the cache with a shared Redis instance so several API
// replicas can reuse each other's results.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
}

// NewRedis connects a cache to the Redis at addr. Entries expire after
// ttl; a zero ttl keeps them until evicted.
func NewRedis(addr string, ttl time.Duration) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{
		client: rdb,
		ttl:    ttl,
		ctx:    context.Background(),
	}
}

func (r *Redis) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, r.ttl).Err()
}

// Ping verifies the connection, so startup can fail fast on a bad addr.
func (r *Redis) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
