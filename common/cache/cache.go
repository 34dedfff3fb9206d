package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON values under keys grouped by invalidation tags.
type Cache interface {
	// Get decodes the cached value into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error
	// InvalidateTags deletes every key registered under any of the tags.
	InvalidateTags(ctx context.Context, tags ...string) error
}

type RedisCache struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, defaultTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
	}
}

func (c *RedisCache) key(key string) string {
	return c.prefix + ":v:" + key
}

func (c *RedisCache) tagKey(tag string) string {
	return c.prefix + ":tag:" + tag
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decoding cache key %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding cache key %s: %w", key, err)
	}

	fullKey := c.key(key)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, fullKey, raw, ttl)
	for _, tag := range tags {
		tk := c.tagKey(tag)
		pipe.SAdd(ctx, tk, fullKey)
		// A tag set outlives its members by one ttl at most.
		pipe.Expire(ctx, tk, 2*ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing cache key %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		tk := c.tagKey(tag)
		keys, err := c.client.SMembers(ctx, tk).Result()
		if err != nil {
			return fmt.Errorf("reading cache tag %s: %w", tag, err)
		}
		keys = append(keys, tk)
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("invalidating cache tag %s: %w", tag, err)
		}
		slog.DebugContext(ctx, "cache tag invalidated", "tag", tag, "keys", len(keys)-1)
	}
	return nil
}

// Nop never stores anything. Used when redis is not configured.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }

func (Nop) Set(context.Context, string, any, time.Duration, ...string) error { return nil }

func (Nop) InvalidateTags(context.Context, ...string) error { return nil }

// Remember returns the cached value for key or loads, stores and returns it.
// Cache failures are logged and never fail the call.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, tags []string, load func() (T, error)) (T, error) {
	var cached T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value, ttl, tags...); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// Invalidate drops tags and logs instead of failing; writes have already committed.
func Invalidate(ctx context.Context, c Cache, tags ...string) {
	if err := c.InvalidateTags(ctx, tags...); err != nil {
		slog.WarnContext(ctx, "cache invalidation failed", "tags", tags, "error", err)
	}
}
