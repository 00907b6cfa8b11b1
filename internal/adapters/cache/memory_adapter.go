package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/kezv166-web/medicare/internal/domain/providers"
	apperrors "github.com/kezv166-web/medicare/pkg/errors"
)

// MemoryAdapter implements the CacheProvider interface in-process. It is
// the default when Redis is not configured; contents do not survive a
// restart.
type MemoryAdapter struct {
	cache *gocache.Cache
}

// NewMemoryAdapter creates a new in-process cache adapter
func NewMemoryAdapter(defaultTTL time.Duration) providers.CacheProvider {
	return &MemoryAdapter{
		cache: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

// Get retrieves a value from cache
func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if value, found := a.cache.Get(key); found {
		if data, ok := value.([]byte); ok {
			return data, nil
		}
	}
	return nil, apperrors.NewNotFoundError("key not found: " + key)
}

// Set stores a value in cache with expiration
func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	ttl := time.Duration(expirationSeconds) * time.Second
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	a.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from cache
func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.cache.Delete(key)
	return nil
}
