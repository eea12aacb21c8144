// File: azulpool/models/pricing.go
package models

// FrequencyMultipliers are discount factors relative to the weekly baseline.
type FrequencyMultipliers struct {
	BiWeekly float64 `json:"biWeekly"`
	Monthly  float64 `json:"monthly"`
}

// PricingConfig is the fully-populated rate table used by the pricing engine.
// Instances handed out by the config cache are shared; treat them as read-only.
type PricingConfig struct {
	BasePrices           map[ServiceCategory]float64 `json:"basePrices"`
	SizeMultipliers      map[PoolSize]float64        `json:"sizeMultipliers"`
	PoolTypeMultipliers  map[PoolType]float64        `json:"poolTypeMultipliers"`
	SpecialConditionFees map[string]float64          `json:"specialConditionFees"`
	EquipmentPrices      map[string]float64          `json:"equipmentPrices"`
	FrequencyMultipliers FrequencyMultipliers        `json:"frequencyMultipliers"`
}

// PricingConfigPatch is the wire form of a stored or admin-submitted
// configuration. Any group or key may be absent; merging onto the compiled-in
// defaults produces a complete PricingConfig.
type PricingConfigPatch struct {
	BasePrices           map[ServiceCategory]float64 `json:"basePrices,omitempty"`
	SizeMultipliers      map[PoolSize]float64        `json:"sizeMultipliers,omitempty"`
	PoolTypeMultipliers  map[PoolType]float64        `json:"poolTypeMultipliers,omitempty"`
	SpecialConditionFees map[string]float64          `json:"specialConditionFees,omitempty"`
	EquipmentPrices      map[string]float64          `json:"equipmentPrices,omitempty"`
	FrequencyMultipliers *FrequencyMultipliersPatch  `json:"frequencyMultipliers,omitempty"`
}

// FrequencyMultipliersPatch distinguishes absent keys from explicit zeroes.
type FrequencyMultipliersPatch struct {
	BiWeekly *float64 `json:"biWeekly,omitempty"`
	Monthly  *float64 `json:"monthly,omitempty"`
}

// FrequencyVariants holds the per-billing-frequency estimates derived from the
// headline total. All three are nil for one-time jobs.
type FrequencyVariants struct {
	Weekly   *float64 `json:"weekly"`
	BiWeekly *float64 `json:"biWeekly"`
	Monthly  *float64 `json:"monthly"`
}

// QuotePricing is the computed price breakdown attached to a quote record.
// BasePrice is the raw category rate before any adjustment; the applied deltas
// are reported separately for audit and display.
type QuotePricing struct {
	BasePrice            float64           `json:"basePrice"`
	SizeAdjustment       float64           `json:"sizeAdjustment"`
	PoolTypeAdjustment   float64           `json:"poolTypeAdjustment"`
	SpecialConditionFees float64           `json:"specialConditionFees"`
	EquipmentFees        float64           `json:"equipmentFees"`
	Subtotal             float64           `json:"subtotal"`
	MonthlyTotal         float64           `json:"monthlyTotal"`
	IsOneTime            bool              `json:"isOneTime"`
	FrequencyVariants    FrequencyVariants `json:"frequencyVariants"`
	Breakdown            []string          `json:"breakdown"`
}
