// File: azulpool/services/pricing/defaults.go
package pricing

import "azulpool/models"

// FallbackEquipmentLabel is the catch-all equipment catalogue entry. Unknown
// equipment labels silently price at this entry rather than erroring.
const FallbackEquipmentLabel = "I'm not sure / something else"

// DefaultConfig returns the compiled-in rate table. A stored configuration is
// always merged onto these values, so every group is guaranteed complete.
//
// Rates reflect the San Antonio market: weekly full service runs $150-$400 a
// month, chemical-only around $99-$120, green-to-clean is premium one-time
// work.
func DefaultConfig() models.PricingConfig {
	return models.PricingConfig{
		BasePrices: map[models.ServiceCategory]float64{
			models.CategoryRegular:   210,
			models.CategoryEquipment: 150,
			models.CategoryFilter:    150,
			models.CategoryGreen:     350,
			models.CategoryOther:     210,
		},
		SizeMultipliers: map[models.PoolSize]float64{
			models.SizeSmall:  190.0 / 210.0,
			models.SizeMedium: 1.0,
			models.SizeLarge:  230.0 / 210.0,
		},
		PoolTypeMultipliers: map[models.PoolType]float64{
			models.TypePoolOnly: 1.0,
			models.TypePoolSpa:  1.15,
			models.TypeHotTub:   0.6,
			models.TypeOther:    1.0,
		},
		SpecialConditionFees: map[string]float64{
			"saltwaterPool":   0,
			"treesOverPool":   20,
			"aboveGroundPool": -20, // chemical-only service, no cleaning
		},
		EquipmentPrices: map[string]float64{
			"Pool pump":            120,
			"Pool filter":          100,
			"Pool heater":          150,
			"Salt system":          110,
			"Automation system":    180,
			FallbackEquipmentLabel: 130,
		},
		FrequencyMultipliers: models.FrequencyMultipliers{
			BiWeekly: 0.65,
			Monthly:  0.4,
		},
	}
}
