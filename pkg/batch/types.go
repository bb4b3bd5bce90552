package batch

import "github.com/dosecraft/infuse/pkg/units"

// DefaultEfficiencyPercent is assumed when a batch omits extraction
// efficiency.
const DefaultEfficiencyPercent = 75.0

// Batch is the complete input record for one dosage calculation.
// It is a pure value: created per calculation, never mutated.
type Batch struct {
	// CannabisGrams is the dry mass of plant material infused.
	CannabisGrams float64 `yaml:"cannabis_grams" json:"cannabis_grams"`

	// THCPercent is the already-active THC fraction of dry mass.
	THCPercent float64 `yaml:"thc_percent" json:"thc_percent"`

	// THCAPercent is the acidic precursor fraction, converted to THC
	// equivalent at the decarboxylation ratio during calculation.
	THCAPercent float64 `yaml:"thca_percent" json:"thca_percent"`

	// EfficiencyPercent is the extraction yield. Nil means unspecified and
	// resolves to DefaultEfficiencyPercent; an explicit zero is respected.
	EfficiencyPercent *float64 `yaml:"efficiency_percent" json:"efficiency_percent"`

	// TotalBaseMade is the full volume of carrier liquid produced.
	TotalBaseMade units.Volume `yaml:"total_base_made" json:"total_base_made"`

	// BaseUsed is the portion of the base measured into the recipe.
	BaseUsed units.Volume `yaml:"base_used" json:"base_used"`

	// Servings is the number of portions the recipe yields.
	Servings float64 `yaml:"servings" json:"servings"`
}

// Efficiency resolves the extraction efficiency, applying the default when
// the field was left unset.
func (b *Batch) Efficiency() float64 {
	if b.EfficiencyPercent == nil {
		return DefaultEfficiencyPercent
	}
	return *b.EfficiencyPercent
}

// WithEfficiency returns a copy of b with an explicit efficiency set.
// Convenient for callers that build batches from flag values.
func (b Batch) WithEfficiency(pct float64) Batch {
	b.EfficiencyPercent = &pct
	return b
}
