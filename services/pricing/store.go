// File: azulpool/services/pricing/store.go
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"azulpool/database/repository/objectstore"
	"azulpool/models"
)

// ConfigKey is the fixed object-store key holding the pricing configuration.
// The config is a singleton per deployment, created implicitly on first save.
const ConfigKey = "config/pricing-config.json"

// ConfigStore persists the pricing configuration as a JSON object.
type ConfigStore struct {
	Objects objectstore.ObjectStore
}

// NewConfigStore returns a ConfigStore over the given object store.
func NewConfigStore(objects objectstore.ObjectStore) *ConfigStore {
	return &ConfigStore{Objects: objects}
}

// Load fetches the stored configuration in its raw (possibly partial) form.
// Returns ErrConfigNotFound when nothing has ever been saved; any other error
// is a storage failure and propagates unchanged.
func (s *ConfigStore) Load(ctx context.Context) (*models.PricingConfigPatch, error) {
	data, err := s.Objects.Get(ctx, ConfigKey)
	if err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	var patch models.PricingConfigPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pricing config: %w", err)
	}
	return &patch, nil
}

// Save overwrites the stored configuration in full.
func (s *ConfigStore) Save(ctx context.Context, cfg models.PricingConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pricing config: %w", err)
	}
	return s.Objects.Put(ctx, ConfigKey, data, true)
}
