package validation

import (
	"fmt"
	"math"

	"github.com/dosecraft/infuse/pkg/batch"
	"github.com/dosecraft/infuse/pkg/dose"
	"github.com/dosecraft/infuse/pkg/units"
)

// ValidateBatch checks a batch before calculation. The calculator itself
// never fails; these checks exist so the CLI can reject input that would
// silently compute to zeros or to an implausible dose.
func ValidateBatch(b *batch.Batch) *Report {
	required := NewReport()
	validateRequired(b, required)
	validatePotency(b, required)

	sanity := NewReport()
	validateUnits(b, sanity)
	validateVolumes(b, sanity)

	required.Merge(sanity)
	return required
}

func validateRequired(b *batch.Batch, r *Report) {
	required := []struct {
		field string
		value float64
	}{
		{"cannabis_grams", b.CannabisGrams},
		{"total_base_made.amount", b.TotalBaseMade.Amount},
		{"base_used.amount", b.BaseUsed.Amount},
		{"servings", b.Servings},
	}

	for _, f := range required {
		if math.IsNaN(f.value) || f.value <= 0 {
			r.AddError(Result{
				Level:       LevelRequired,
				Message:     fmt.Sprintf("%s must be greater than 0", f.field),
				Field:       f.field,
				ActualValue: f.value,
				Expected:    "> 0",
			})
		}
	}
}

func validateUnits(b *batch.Batch, r *Report) {
	volumes := []struct {
		field string
		unit  units.Unit
	}{
		{"total_base_made.unit", b.TotalBaseMade.Unit},
		{"base_used.unit", b.BaseUsed.Unit},
	}

	for _, v := range volumes {
		if v.unit == "" || units.Known(v.unit) {
			continue
		}
		// The calculator treats unknown units as milliliters; warn so a
		// typo like "cups" does not silently change the dose.
		r.AddWarning(Result{
			Level:       LevelSanity,
			Message:     fmt.Sprintf("unrecognized unit %q will be treated as ml", v.unit),
			Field:       v.field,
			ActualValue: string(v.unit),
			Expected:    fmt.Sprintf("one of %v", units.All()),
			Suggestions: []string{"Check the unit spelling; supported units are ml, tsp, tbsp, fl_oz, cup"},
		})
	}
}

func validatePotency(b *batch.Batch, r *Report) {
	if b.THCPercent < 0 {
		r.AddError(Result{
			Level:       LevelRequired,
			Message:     "thc_percent must be non-negative",
			Field:       "thc_percent",
			ActualValue: b.THCPercent,
			Expected:    ">= 0",
		})
	}
	if b.THCAPercent < 0 {
		r.AddError(Result{
			Level:       LevelRequired,
			Message:     "thca_percent must be non-negative",
			Field:       "thca_percent",
			ActualValue: b.THCAPercent,
			Expected:    ">= 0",
		})
	}

	if total := b.THCPercent + b.THCAPercent*dose.DecarbFactor; total > 100 {
		r.AddWarning(Result{
			Level:       LevelSanity,
			Message:     fmt.Sprintf("combined potency %.2f%% exceeds 100%% of plant mass", total),
			Field:       "thc_percent",
			ActualValue: total,
			Expected:    "<= 100",
		})
	}

	if b.EfficiencyPercent == nil {
		r.AddInfo(Result{
			Level:   LevelSanity,
			Message: fmt.Sprintf("efficiency_percent not specified; assuming %.0f%%", batch.DefaultEfficiencyPercent),
			Field:   "efficiency_percent",
		})
	}

	if eff := b.Efficiency(); eff < 0 {
		r.AddError(Result{
			Level:       LevelRequired,
			Message:     "efficiency_percent must be non-negative",
			Field:       "efficiency_percent",
			ActualValue: eff,
			Expected:    ">= 0",
		})
	} else if eff > 100 {
		r.AddWarning(Result{
			Level:       LevelSanity,
			Message:     fmt.Sprintf("efficiency %.1f%% exceeds 100%%", eff),
			Field:       "efficiency_percent",
			ActualValue: eff,
			Expected:    "0-100",
		})
	}
}

func validateVolumes(b *batch.Batch, r *Report) {
	usedMl := b.BaseUsed.Milliliters()
	madeMl := b.TotalBaseMade.Milliliters()
	if madeMl > 0 && usedMl > madeMl {
		r.AddWarning(Result{
			Level:       LevelSanity,
			Message:     fmt.Sprintf("base_used (%.1f ml) exceeds total_base_made (%.1f ml)", usedMl, madeMl),
			Field:       "base_used",
			ActualValue: usedMl,
			Expected:    fmt.Sprintf("<= %.1f ml", madeMl),
			Suggestions: []string{"Check that base_used is the portion measured into the recipe, not a second batch"},
		})
	}
}
