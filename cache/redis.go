package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client is a thin cache-aside wrapper around Redis used for the public
// catalog and doctor lists. A nil *Client is valid and behaves as a miss
// on every call, so the server runs fine without Redis.
type Client struct {
	rdb *redis.Client
}

// New connects to REDIS_ADDR. It returns (nil, nil) when the variable is
// unset: caching is optional.
func New() (*Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	log.Printf("✅ Connected to Redis at %s", addr)
	return &Client{rdb: rdb}, nil
}

// GetJSON loads key into dest. The bool reports a cache hit.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("⚠️ Corrupt cache entry %s: %v", key, err)
		c.rdb.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores value under key with a TTL, best effort.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("⚠️ Failed to cache %s: %v", key, err)
	}
}

// Invalidate removes keys after admin writes.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️ Failed to invalidate cache: %v", err)
	}
}

// Close shuts the connection down.
func (c *Client) Close() {
	if c != nil && c.rdb != nil {
		c.rdb.Close()
	}
}
