package fittrack

import (
	"fmt"
	"math"
)

// HydrationResult is the derived hydration protocol for one workout.
// Purely computed, no identity or lifecycle beyond a single call.
type HydrationResult struct {
	SweatRateAdjusted float64  `json:"sweat_rate_adjusted"`
	FluidLossLbs      float64  `json:"fluid_loss_lbs"`
	FluidLossOz       float64  `json:"fluid_loss_oz"`
	ReplaceOzRange    string   `json:"replace_oz_range"`
	SodiumMg          int      `json:"sodium_mg"`
	Timing            string   `json:"timing"`
	Tips              []string `json:"tips"`
}

// tempMultiplier returns the temperature adjustment. The tiers are mutually
// exclusive: above 90°F wins over above 80°F.
func tempMultiplier(tempF float64) float64 {
	switch {
	case tempF > 90:
		return 1.4
	case tempF > 80:
		return 1.2
	default:
		return 1.0
	}
}

// CalculateHydration estimates fluid loss and electrolyte needs for a heavy
// sweater (hyperhidrosis baseline). Sodium target is ~1.5g per training hour.
func CalculateHydration(durationMin int, intensity IntensityLevel, tempF, sweatRate float64) HydrationResult {
	hours := float64(durationMin) / 60

	adjustedSweatRate := sweatRate * intensity.Multiplier() * tempMultiplier(tempF)
	fluidLossLbs := adjustedSweatRate * hours
	fluidLossOz := fluidLossLbs * 16 // 1 lb == ~16 oz of fluid

	sodiumMg := int(hours * 1500)

	replaceOzMin := fluidLossOz
	replaceOzMax := fluidLossOz * 1.5

	return HydrationResult{
		SweatRateAdjusted: round2(adjustedSweatRate),
		FluidLossLbs:      round2(fluidLossLbs),
		FluidLossOz:       round1(fluidLossOz),
		ReplaceOzRange:    fmt.Sprintf("%.1f-%.1f", round1(replaceOzMin), round1(replaceOzMax)),
		SodiumMg:          sodiumMg,
		Timing:            "Distribute over 2-4 hours post-workout",
		Tips: []string{
			"Include potassium-rich foods (banana, potato)",
			"Magnesium supplement if cramping",
			"Monitor urine color (pale yellow = good hydration)",
			"Pre-workout: 16-20 oz 2 hours before, 8-10 oz 15 min before",
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
