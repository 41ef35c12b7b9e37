package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements PartialCache using go-redis/v9, for deployments where
// the viewer and the orchestrator do not share a process.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new RedisCache from a Redis URL.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

var _ PartialCache = (*RedisCache)(nil)

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) SetPartial(ctx context.Context, documentID uuid.UUID, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, PartialKey(documentID), data, ttl).Err()
}

func (c *RedisCache) GetPartial(ctx context.Context, documentID uuid.UUID) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, PartialKey(documentID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) DeletePartial(ctx context.Context, documentID uuid.UUID) error {
	return c.client.Del(ctx, PartialKey(documentID)).Err()
}
