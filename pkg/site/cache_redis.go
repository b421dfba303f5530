package site

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// DefaultRedisPrefix namespaces host cache keys in Redis.
const DefaultRedisPrefix = "sitekit:host:"

// RedisCache shares the host cache between processes.
// Entries do not expire unless a TTL is configured.
type RedisCache struct {
	client        redis.UniversalClient
	prefix        string
	ttl           time.Duration
	scanBatchSize int64
	logger        *slog.Logger
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithRedisPrefix sets the key prefix.
func WithRedisPrefix(prefix string) RedisCacheOption {
	return func(c *RedisCache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithRedisTTL sets an expiration for cached hosts. Zero keeps them forever.
func WithRedisTTL(ttl time.Duration) RedisCacheOption {
	return func(c *RedisCache) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

// WithRedisLogger sets the logger used to report Redis failures.
func WithRedisLogger(l *slog.Logger) RedisCacheOption {
	return func(c *RedisCache) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewRedisCache creates a host cache stored in Redis.
func NewRedisCache(client redis.UniversalClient, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		client:        client,
		prefix:        DefaultRedisPrefix,
		scanBatchSize: 1000,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get treats Redis failures as misses so that resolution falls through to the store.
func (c *RedisCache) Get(ctx context.Context, host string) (*Site, bool) {
	data, err := c.client.Get(ctx, c.prefix+host).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "site cache read failed", logger.Host(host), logger.Error(err))
		}
		return nil, false
	}

	site, err := decodeCachedSite(data)
	if err != nil {
		c.logger.WarnContext(ctx, "site cache entry is corrupt", logger.Host(host), logger.Error(err))
		return nil, false
	}
	return site, true
}

func (c *RedisCache) Set(ctx context.Context, host string, site *Site) error {
	data, err := encodeCachedSite(site)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+host, data, c.ttl).Err()
}

// Clear removes every key under the cache prefix using SCAN to avoid blocking Redis.
func (c *RedisCache) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", c.scanBatchSize).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// A negative result is stored as JSON null.
func encodeCachedSite(site *Site) ([]byte, error) {
	return json.Marshal(site)
}

func decodeCachedSite(data []byte) (*Site, error) {
	var site *Site
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, err
	}
	return site, nil
}
