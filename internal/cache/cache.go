package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type Cache struct {
	client *redis.Client
	scope  string
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

// NewCache connects to Redis. scope keeps entries of different remote accounts apart.
func NewCache(addr, password, scope string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb, scope: scope}
}

func (c *Cache) GetConfigStatus(ctx context.Context) (*port.ConfigStatus, error) {
	val, err := c.client.Get(ctx, c.configKey()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var st port.ConfigStatus
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}
	return &st, nil
}

// SetConfigStatus stores the status; failures are only logged since the cache is optional.
func (c *Cache) SetConfigStatus(ctx context.Context, st *port.ConfigStatus, ttl time.Duration) {
	logger.Debugf(ctx, "caching remote configuration status for %s", ttl)

	data, err := json.Marshal(st)
	if err != nil {
		logger.Warnf(ctx, "failed to marshal configuration status: %v", err)
		return
	}
	if err := c.client.Set(ctx, c.configKey(), data, ttl).Err(); err != nil {
		logger.Warnf(ctx, "failed to cache configuration status: %v", err)
	}
}

func (c *Cache) DeleteConfigStatus(ctx context.Context) error {
	if err := c.client.Del(ctx, c.configKey()).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) configKey() string {
	return "remote:config-status:" + c.scope
}

func (c *Cache) Close() error {
	return c.client.Close()
}
