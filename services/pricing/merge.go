// File: azulpool/services/pricing/merge.go
package pricing

import "azulpool/models"

// MergeWithDefaults overlays a stored (possibly partial) configuration onto
// the compiled-in defaults, group by group, and returns a fully-populated
// config. Stored values win; missing keys or whole missing groups fall back.
//
// For the enum-keyed groups, keys that do not exist in the defaults are
// dropped rather than passed through. Equipment prices are the exception: the
// catalogue is free-form, so stored entries are kept in full (the catch-all
// entry is always guaranteed). Multipliers must be positive to take effect;
// a zero or negative stored multiplier falls back to the default for that key.
func MergeWithDefaults(patch *models.PricingConfigPatch) models.PricingConfig {
	merged := DefaultConfig()
	if patch == nil {
		return merged
	}

	for category := range merged.BasePrices {
		if v, ok := patch.BasePrices[category]; ok && v >= 0 {
			merged.BasePrices[category] = v
		}
	}
	for size := range merged.SizeMultipliers {
		if v, ok := patch.SizeMultipliers[size]; ok && v > 0 {
			merged.SizeMultipliers[size] = v
		}
	}
	for poolType := range merged.PoolTypeMultipliers {
		if v, ok := patch.PoolTypeMultipliers[poolType]; ok && v > 0 {
			merged.PoolTypeMultipliers[poolType] = v
		}
	}
	// Special-condition fees are signed; a negative fee is a discount.
	for flag := range merged.SpecialConditionFees {
		if v, ok := patch.SpecialConditionFees[flag]; ok {
			merged.SpecialConditionFees[flag] = v
		}
	}
	for label, v := range patch.EquipmentPrices {
		if v >= 0 {
			merged.EquipmentPrices[label] = v
		}
	}
	if patch.FrequencyMultipliers != nil {
		if v := patch.FrequencyMultipliers.BiWeekly; v != nil && *v > 0 {
			merged.FrequencyMultipliers.BiWeekly = *v
		}
		if v := patch.FrequencyMultipliers.Monthly; v != nil && *v > 0 {
			merged.FrequencyMultipliers.Monthly = *v
		}
	}
	return merged
}
