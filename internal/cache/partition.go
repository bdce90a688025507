package cache

import (
	"context"
	"time"

	"example.com/scanbridge/internal/storage"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// PartitionCache fronts partition reads of a storage.Store with Redis. It is
// strictly fail-open: any Redis error falls through to the backing store, so
// a cache outage only costs latency. Writes go through to the store first and
// then invalidate the cached copy.
type PartitionCache struct {
	store storage.Store
	redis RedisClient
	ttl   time.Duration
	log   *logrus.Logger
}

// NewPartitionCache wraps store with a Redis read cache.
func NewPartitionCache(store storage.Store, client RedisClient, ttl time.Duration, log *logrus.Logger) *PartitionCache {
	return &PartitionCache{
		store: store,
		redis: client,
		ttl:   ttl,
		log:   log,
	}
}

func (c *PartitionCache) cacheKey(key string) string {
	return "scanbridge:partition:" + key
}

// Get reads a partition, preferring the cached copy.
func (c *PartitionCache) Get(key string) (string, bool, error) {
	ctx := context.Background()
	cached, err := c.redis.Get(ctx, c.cacheKey(key))
	if err == nil {
		return cached, true, nil
	}
	if err != redis.Nil {
		c.log.WithError(err).WithField("key", key).Debug("Partition cache read failed")
	}

	value, ok, err := c.store.Get(key)
	if err != nil || !ok {
		return value, ok, err
	}
	if err := c.redis.Set(ctx, c.cacheKey(key), value, c.ttl); err != nil {
		c.log.WithError(err).WithField("key", key).Debug("Partition cache populate failed")
	}
	return value, true, nil
}

// Set writes a partition and invalidates its cached copy.
func (c *PartitionCache) Set(key, value string) error {
	if err := c.store.Set(key, value); err != nil {
		return err
	}
	if err := c.redis.Delete(context.Background(), c.cacheKey(key)); err != nil {
		c.log.WithError(err).WithField("key", key).Debug("Partition cache invalidate failed")
	}
	return nil
}

// Delete removes a partition and invalidates its cached copy.
func (c *PartitionCache) Delete(key string) error {
	if err := c.store.Delete(key); err != nil {
		return err
	}
	if err := c.redis.Delete(context.Background(), c.cacheKey(key)); err != nil {
		c.log.WithError(err).WithField("key", key).Debug("Partition cache invalidate failed")
	}
	return nil
}

// Close closes the backing store. The Redis client is owned by the caller.
func (c *PartitionCache) Close() error {
	return c.store.Close()
}
