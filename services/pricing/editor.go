// File: azulpool/services/pricing/editor.go
package pricing

import (
	"context"
	"errors"
	"fmt"

	"azulpool/models"
)

// GetConfig reads the stored configuration fresh from storage (bypassing the
// cache, so admins always see what is actually persisted) and merges it with
// the defaults. A never-saved config is not an error; storage failures are.
func (s *DefaultConfigService) GetConfig(ctx context.Context) (*ConfigView, error) {
	patch, err := s.Store.Load(ctx)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load pricing config: %w", err)
	}
	return &ConfigView{
		Config:   MergeWithDefaults(patch),
		Defaults: DefaultConfig(),
	}, nil
}

// SaveConfig merges the submitted (possibly partial) configuration onto the
// defaults so the stored object is always complete, persists it, and then
// invalidates the cache. The cache is only invalidated after a successful
// save; a failed save must not discard a still-valid cached config.
func (s *DefaultConfigService) SaveConfig(ctx context.Context, patch *models.PricingConfigPatch) (*models.PricingConfig, error) {
	merged := MergeWithDefaults(patch)
	if err := s.Store.Save(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to save pricing config: %w", err)
	}
	s.Cache.Invalidate()
	return &merged, nil
}
