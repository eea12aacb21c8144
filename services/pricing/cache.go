// File: azulpool/services/pricing/cache.go
package pricing

import (
	"context"
	"errors"
	"sync"

	"azulpool/models"
)

// ConfigCache holds the merged pricing configuration for the lifetime of the
// process so the engine does not hit storage on every calculation. It is an
// explicit injected object rather than package-level state; construct one at
// startup and share it between handlers.
//
// Invalidation is process-local. In a multi-instance deployment a config
// change becomes visible to other instances only after their caches restart;
// that staleness is accepted.
type ConfigCache struct {
	mu     sync.Mutex
	store  *ConfigStore
	cached *models.PricingConfig
}

// NewConfigCache returns an empty cache over the given store.
func NewConfigCache(store *ConfigStore) *ConfigCache {
	return &ConfigCache{store: store}
}

// Resolve returns the merged configuration, loading and caching it on first
// use. A missing stored config resolves (and caches) the pure defaults. A
// storage failure propagates to the caller and leaves any previously cached
// value untouched.
func (c *ConfigCache) Resolve(ctx context.Context) (*models.PricingConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	patch, err := c.store.Load(ctx)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}
	merged := MergeWithDefaults(patch)
	c.cached = &merged
	return c.cached, nil
}

// Invalidate clears the cache so the next Resolve re-fetches from storage.
// Call it immediately after every successful save.
func (c *ConfigCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}
