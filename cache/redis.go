package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gangesh54321/tqa"
)

// RedisCache is a Redis-backed ResultCache for multi-process runs, e.g.
// a CI fleet analyzing the same corpus across several workers.
type RedisCache struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// RedisConfig configures a RedisCache.
type RedisConfig struct {
	URL       string // e.g. "redis://localhost:6379"
	TTL       int    // seconds; 0 means no expiration
	KeyPrefix string // default "tqa:"
}

// NewRedisCache parses cfg.URL, opens a client, and pings it once.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisCacheFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisCacheFromClient wraps an already-constructed client, useful
// for tests that inject a redismock client.
func NewRedisCacheFromClient(client *redis.Client, ttlSeconds int, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = "tqa:"
	}
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	return &RedisCache{client: client, ttl: ttl, keyPrefix: keyPrefix}
}

// Get retrieves and JSON-decodes a result. A Redis error or malformed
// payload is treated as a cache miss.
func (c *RedisCache) Get(key string) (*tqa.QAResult, bool) {
	ctx := context.Background()
	raw, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var result tqa.QAResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Set JSON-encodes and stores a result. Errors are swallowed: the
// cache is an optimization, never a correctness dependency.
func (c *RedisCache) Set(key string, result *tqa.QAResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	ctx := context.Background()
	c.client.Set(ctx, c.keyPrefix+key, payload, c.ttl)
}

// Close closes the underlying Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *RedisCache) Ping() error {
	return c.client.Ping(context.Background()).Err()
}

var _ resultCache = (*RedisCache)(nil)
