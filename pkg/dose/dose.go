package dose

import (
	"math"

	"github.com/dosecraft/infuse/pkg/batch"
	"github.com/dosecraft/infuse/pkg/units"
)

// Report is the complete dosage output for one batch.
type Report struct {
	// TotalTHCMg is the active mass extracted into the full base volume.
	TotalTHCMg float64 `json:"total_thc_mg"`

	// MgPerMl is the concentration of the finished base.
	MgPerMl float64 `json:"mg_per_ml"`

	// MgPerUnit is the concentration expressed per common kitchen measure.
	MgPerUnit map[units.Unit]float64 `json:"mg_per_unit"`

	// TotalTHCInRecipeMg is the active mass in the portion of base the
	// recipe actually uses.
	TotalTHCInRecipeMg float64 `json:"total_thc_in_recipe_mg"`

	// MgPerServing is the active mass in one serving of the recipe.
	MgPerServing float64 `json:"mg_per_serving"`
}

// Calculate computes the dosage report for a batch. It is pure and total:
// malformed numeric inputs are clamped rather than rejected, every division
// is guarded, and identical inputs always produce identical output.
//
// Intermediate arithmetic keeps full float64 precision; rounding to two
// decimals happens once, on the returned record.
func Calculate(b *batch.Batch) *Report {
	grams := clampNonNegative(b.CannabisGrams)
	thcPct := clampNonNegative(b.THCPercent)
	thcaPct := clampNonNegative(b.THCAPercent)
	efficiency := normalizeEfficiency(b)

	thcFromThca := thcaPct * DecarbFactor
	totalPct := thcPct + thcFromThca

	totalMg := grams * MgPerGram * (totalPct / 100) * (efficiency / 100)

	totalBaseMl := normalizedMilliliters(b.TotalBaseMade)
	baseUsedMl := normalizedMilliliters(b.BaseUsed)

	mgPerMl := 0.0
	if totalBaseMl > 0 {
		mgPerMl = totalMg / totalBaseMl
	}

	totalInRecipe := mgPerMl * baseUsedMl

	perServing := 0.0
	if servings := clampNonNegative(b.Servings); servings > 0 {
		perServing = totalInRecipe / servings
	}

	perUnit := make(map[units.Unit]float64, len(units.All()))
	for _, u := range units.All() {
		perUnit[u] = round2(mgPerMl * units.Factor(u))
	}

	return &Report{
		TotalTHCMg:         round2(totalMg),
		MgPerMl:            round2(mgPerMl),
		MgPerUnit:          perUnit,
		TotalTHCInRecipeMg: round2(totalInRecipe),
		MgPerServing:       round2(perServing),
	}
}

// clampNonNegative maps NaN and negative values to zero.
func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// normalizeEfficiency resolves the batch efficiency: unset or NaN falls back
// to the default, negatives clamp to zero, an explicit zero stands.
func normalizeEfficiency(b *batch.Batch) float64 {
	e := b.Efficiency()
	if math.IsNaN(e) {
		return batch.DefaultEfficiencyPercent
	}
	if e < 0 {
		return 0
	}
	return e
}

func normalizedMilliliters(v units.Volume) float64 {
	return clampNonNegative(v.Amount) * units.Factor(v.Unit)
}

// round2 rounds half away from zero at two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
