package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache keeps entries in process. Expired entries are purged every
// cleanupInterval; a Get never returns an expired entry either way.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) Cache {
	return &memoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *memoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.store.Set(key, value, ttl)
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, ok := m.store.Get(key)
	if !ok {
		return "", ErrMiss
	}
	return v.(string), nil
}

func (m *memoryCache) Del(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

func (m *memoryCache) Close() error {
	m.store.Flush()
	return nil
}
