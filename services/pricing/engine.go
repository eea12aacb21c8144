// File: azulpool/services/pricing/engine.go
package pricing

import (
	"fmt"
	"math"

	"azulpool/models"
)

// Calculate converts a quote request and a resolved rate table into a price
// breakdown. It is a pure function: no I/O, no shared state, and it never
// fails for any well-formed input (absent category defaults to regular,
// unknown equipment labels price at the catch-all entry).
//
// The returned BasePrice is the raw category rate before any adjustment; the
// size and pool-type deltas actually applied are reported separately.
func Calculate(req models.QuoteRequest, cfg models.PricingConfig) models.QuotePricing {
	category := req.ServiceCategory
	if category == "" {
		category = models.CategoryRegular
	}
	oneTime := category.IsOneTime()

	var breakdown []string

	base := cfg.BasePrices[category]
	rawBase := base
	switch {
	case req.ServiceCategory == "":
		breakdown = append(breakdown, fmt.Sprintf("Base service (weekly visits, medium pool): %s/month", money(base)))
	case oneTime:
		breakdown = append(breakdown, fmt.Sprintf("Base %s job: %s", category, money(base)))
	default:
		breakdown = append(breakdown, fmt.Sprintf("Base %s service (weekly visits, medium pool): %s/month", category, money(base)))
	}

	var sizeAdjustment float64
	if req.PoolSize != "" {
		multiplier, ok := cfg.SizeMultipliers[req.PoolSize]
		if !ok {
			multiplier = 1
		}
		newBase := base * multiplier
		sizeAdjustment = newBase - base
		base = newBase
		if sizeAdjustment != 0 {
			breakdown = append(breakdown, fmt.Sprintf("Pool size (%s): %s", req.PoolSize, signedMoney(sizeAdjustment)))
		}
	}

	var poolTypeAdjustment float64
	if req.PoolType != "" {
		multiplier, ok := cfg.PoolTypeMultipliers[req.PoolType]
		if !ok {
			// Unmapped pool types price as "other".
			multiplier = cfg.PoolTypeMultipliers[models.TypeOther]
		}
		newBase := base * multiplier
		poolTypeAdjustment = newBase - base
		base = newBase
		if poolTypeAdjustment != 0 {
			breakdown = append(breakdown, fmt.Sprintf("Pool type (%s): %s", req.PoolType, signedMoney(poolTypeAdjustment)))
		}
	}

	var specialConditionFees float64
	applyFlag := func(set bool, flag, label string) {
		if !set {
			return
		}
		fee := cfg.SpecialConditionFees[flag]
		specialConditionFees += fee
		if oneTime {
			breakdown = append(breakdown, fmt.Sprintf("%s: %s (one-time)", label, signedMoney(fee)))
		} else {
			breakdown = append(breakdown, fmt.Sprintf("%s: %s/month", label, signedMoney(fee)))
		}
	}
	applyFlag(req.SpecialFlags.SaltwaterPool, "saltwaterPool", "Saltwater pool")
	applyFlag(req.SpecialFlags.TreesOverPool, "treesOverPool", "Trees over pool")
	applyFlag(req.SpecialFlags.AboveGroundPool, "aboveGroundPool", "Above-ground pool")

	var equipmentFees float64
	if category == models.CategoryEquipment && len(req.EquipmentSelections) > 0 {
		for _, label := range req.EquipmentSelections {
			price, ok := cfg.EquipmentPrices[label]
			if !ok {
				price = cfg.EquipmentPrices[FallbackEquipmentLabel]
			}
			equipmentFees += price
		}
		count := len(req.EquipmentSelections)
		unit := "items"
		if count == 1 {
			unit = "item"
		}
		breakdown = append(breakdown, fmt.Sprintf("Equipment service (%d %s): %s", count, unit, money(equipmentFees)))
	}

	// Subtotal stays unclamped for reporting; the headline total floors at zero.
	subtotal := base + specialConditionFees + equipmentFees
	monthlyTotal := math.Max(0, subtotal)

	breakdown = append(breakdown, "---")

	var variants models.FrequencyVariants
	if oneTime {
		breakdown = append(breakdown, fmt.Sprintf("One-time job, estimated total: %s", money(monthlyTotal)))
	} else {
		weekly := monthlyTotal
		biWeekly := monthlyTotal * cfg.FrequencyMultipliers.BiWeekly
		monthly := monthlyTotal * cfg.FrequencyMultipliers.Monthly
		variants = models.FrequencyVariants{Weekly: &weekly, BiWeekly: &biWeekly, Monthly: &monthly}
		breakdown = append(breakdown,
			fmt.Sprintf("Weekly visits: %s/month", money(weekly)),
			fmt.Sprintf("Bi-weekly visits: %s/month", money(biWeekly)),
			fmt.Sprintf("Monthly visits: %s/month", money(monthly)),
		)
	}

	return models.QuotePricing{
		BasePrice:            rawBase,
		SizeAdjustment:       sizeAdjustment,
		PoolTypeAdjustment:   poolTypeAdjustment,
		SpecialConditionFees: specialConditionFees,
		EquipmentFees:        equipmentFees,
		Subtotal:             subtotal,
		MonthlyTotal:         monthlyTotal,
		IsOneTime:            oneTime,
		FrequencyVariants:    variants,
		Breakdown:            breakdown,
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func signedMoney(v float64) string {
	if v > 0 {
		return "+" + money(v)
	}
	return money(v)
}
