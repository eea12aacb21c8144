// File: azulpool/services/pricing/interface.go
package pricing

import (
	"context"

	"azulpool/models"
)

// ConfigView is what the admin console gets back on a read: the effective
// merged configuration plus the raw defaults for the UI to diff against.
type ConfigView struct {
	Config   models.PricingConfig `json:"config"`
	Defaults models.PricingConfig `json:"defaults"`
}

// ConfigService exposes the admin read/merge/write operations over the
// pricing configuration. Authentication is enforced by middleware before any
// of these run.
type ConfigService interface {
	GetConfig(ctx context.Context) (*ConfigView, error)
	SaveConfig(ctx context.Context, patch *models.PricingConfigPatch) (*models.PricingConfig, error)
}

// DefaultConfigService is the production implementation.
type DefaultConfigService struct {
	Store *ConfigStore
	Cache *ConfigCache
}
