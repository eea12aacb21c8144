package pricing

import (
	"testing"

	"azulpool/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestMergeNilPatchReturnsDefaults(t *testing.T) {
	merged := MergeWithDefaults(nil)

	defaults := DefaultConfig()
	if merged.BasePrices[models.CategoryRegular] != defaults.BasePrices[models.CategoryRegular] {
		t.Errorf("regular base = %.2f, want default %.2f",
			merged.BasePrices[models.CategoryRegular], defaults.BasePrices[models.CategoryRegular])
	}
	if merged.FrequencyMultipliers != defaults.FrequencyMultipliers {
		t.Errorf("frequency multipliers = %+v, want defaults %+v",
			merged.FrequencyMultipliers, defaults.FrequencyMultipliers)
	}
}

func TestMergePartialGroupKeepsUnmentionedKeys(t *testing.T) {
	merged := MergeWithDefaults(&models.PricingConfigPatch{
		BasePrices: map[models.ServiceCategory]float64{
			models.CategoryRegular: 250,
		},
	})

	if merged.BasePrices[models.CategoryRegular] != 250 {
		t.Errorf("regular base = %.2f, want override 250", merged.BasePrices[models.CategoryRegular])
	}
	if merged.BasePrices[models.CategoryGreen] != 350 {
		t.Errorf("green base = %.2f, want untouched default 350", merged.BasePrices[models.CategoryGreen])
	}
	// Groups absent from the patch come back whole.
	if len(merged.SizeMultipliers) != 3 {
		t.Errorf("size multipliers = %v, want full default group", merged.SizeMultipliers)
	}
}

func TestMergeDropsUnknownEnumKeys(t *testing.T) {
	merged := MergeWithDefaults(&models.PricingConfigPatch{
		BasePrices: map[models.ServiceCategory]float64{
			"vip": 999,
		},
		SpecialConditionFees: map[string]float64{
			"heatedDeck": 40,
		},
	})

	if _, ok := merged.BasePrices["vip"]; ok {
		t.Error("unknown base-price key survived the merge")
	}
	if _, ok := merged.SpecialConditionFees["heatedDeck"]; ok {
		t.Error("unknown special-condition key survived the merge")
	}
}

func TestMergeEquipmentUnion(t *testing.T) {
	merged := MergeWithDefaults(&models.PricingConfigPatch{
		EquipmentPrices: map[string]float64{
			"Pool pump":     140,
			"Robot cleaner": 200,
		},
	})

	if merged.EquipmentPrices["Pool pump"] != 140 {
		t.Errorf("pump price = %.2f, want override 140", merged.EquipmentPrices["Pool pump"])
	}
	if merged.EquipmentPrices["Robot cleaner"] != 200 {
		t.Errorf("free-form equipment entry dropped: %v", merged.EquipmentPrices)
	}
	if merged.EquipmentPrices[FallbackEquipmentLabel] != 130 {
		t.Errorf("catch-all entry lost its default: %v", merged.EquipmentPrices)
	}
}

func TestMergeRejectsNonPositiveMultipliers(t *testing.T) {
	merged := MergeWithDefaults(&models.PricingConfigPatch{
		SizeMultipliers: map[models.PoolSize]float64{
			models.SizeLarge: 0,
		},
		PoolTypeMultipliers: map[models.PoolType]float64{
			models.TypeHotTub: -1,
		},
		FrequencyMultipliers: &models.FrequencyMultipliersPatch{
			BiWeekly: floatPtr(0),
			Monthly:  floatPtr(0.5),
		},
	})

	defaults := DefaultConfig()
	if merged.SizeMultipliers[models.SizeLarge] != defaults.SizeMultipliers[models.SizeLarge] {
		t.Errorf("zero size multiplier overrode the default")
	}
	if merged.PoolTypeMultipliers[models.TypeHotTub] != defaults.PoolTypeMultipliers[models.TypeHotTub] {
		t.Errorf("negative pool-type multiplier overrode the default")
	}
	if merged.FrequencyMultipliers.BiWeekly != defaults.FrequencyMultipliers.BiWeekly {
		t.Errorf("zero bi-weekly multiplier overrode the default")
	}
	if merged.FrequencyMultipliers.Monthly != 0.5 {
		t.Errorf("monthly multiplier = %.2f, want override 0.5", merged.FrequencyMultipliers.Monthly)
	}
}

func TestMergeAllowsNegativeFeesAndRejectsNegativePrices(t *testing.T) {
	merged := MergeWithDefaults(&models.PricingConfigPatch{
		BasePrices: map[models.ServiceCategory]float64{
			models.CategoryFilter: -50,
		},
		SpecialConditionFees: map[string]float64{
			"saltwaterPool": -15,
		},
	})

	if merged.BasePrices[models.CategoryFilter] != 150 {
		t.Errorf("negative base price overrode the default")
	}
	if merged.SpecialConditionFees["saltwaterPool"] != -15 {
		t.Errorf("saltwater fee = %.2f, want signed override -15", merged.SpecialConditionFees["saltwaterPool"])
	}
}
