// Package cache keeps the last generated inventory report in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/inventory-tracker/internal/report/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
)

const (
	// GenerationKey counts committed product writes. Reports are cached per generation.
	GenerationKey   = "inventory:report:generation"
	reportKeyPrefix = "inventory:report:"
)

// ReportKey is the Redis key holding the report built at generation gen
func ReportKey(gen int64) string {
	return reportKeyPrefix + strconv.FormatInt(gen, 10)
}

// RedisCache stores the report as JSON with a TTL, keyed by the write generation it was built
// from. A nil client turns every call into a no-op.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a report cache
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// NewRedisClient connects to addr; an empty addr disables caching
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Logger.Info().Str("addr", addr).Msg("Redis connected")
	return client, nil
}

func (c *RedisCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// Get returns the report cached for the current generation along with that generation. A
// negative generation means it could not be read and the caller must not store its result.
func (c *RedisCache) Get(ctx context.Context) (*domain.InventoryReport, int64, bool) {
	if !c.enabled() {
		return nil, -1, false
	}

	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		gen = 0
	case err != nil:
		logger.Warn(ctx).Err(err).Str("cache_key", GenerationKey).Msg("Failed to read report generation")
		return nil, -1, false
	}

	key := ReportKey(gen)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to read cached report")
		}
		return nil, gen, false
	}

	var report domain.InventoryReport
	if err := json.Unmarshal(raw, &report); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Discarding malformed cached report")
		_ = c.client.Del(ctx, key).Err()
		return nil, gen, false
	}

	logger.Debug(ctx).Str("cache_key", key).Msg("Cache hit")
	return &report, gen, true
}

// Set stores a report built from data read at generation gen. A report built before a later
// write lands under a key no reader asks for. Failures are logged only.
func (c *RedisCache) Set(ctx context.Context, gen int64, report *domain.InventoryReport) {
	if !c.enabled() || gen < 0 {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to encode report for cache")
		return
	}
	key := ReportKey(gen)
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache report")
		return
	}

	logger.Debug(ctx).
		Str("cache_key", key).
		Dur("ttl", c.ttl).
		Int("size", len(raw)).
		Msg("Report cached")
}

// Invalidate advances the generation, orphaning every report cached so far
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	gen, err := c.client.Incr(ctx, GenerationKey).Result()
	if err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	logger.Debug(ctx).Int64("generation", gen).Msg("Cache invalidated")
	return nil
}
