package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "todoapp/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyList = "item:list"

// ItemCache caches the full item list in Redis. Writes go around it: every
// mutation invalidates, so Postgres stays the source of truth.
type ItemCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewItemCache returns a new ItemCache.
func NewItemCache(rdb *redis.Client, ttl time.Duration) *ItemCache {
	return &ItemCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil if miss.
func (c *ItemCache) GetList(ctx context.Context) ([]dom.Item, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Item
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *ItemCache) SetList(ctx context.Context, list []dom.Item) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// Invalidate drops the cached list (called on every write).
func (c *ItemCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}
