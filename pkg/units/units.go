package units

// Unit is a volume unit accepted for base-liquid measurements.
type Unit string

const (
	Milliliter Unit = "ml"
	Teaspoon   Unit = "tsp"
	Tablespoon Unit = "tbsp"
	FluidOunce Unit = "fl_oz"
	Cup        Unit = "cup"
)

// toMilliliters maps each unit to its milliliter equivalent. The table is
// fixed; it never changes at runtime.
var toMilliliters = map[Unit]float64{
	Milliliter: 1,
	Teaspoon:   4.92892,
	Tablespoon: 14.7868,
	FluidOunce: 29.5735,
	Cup:        236.588,
}

// All returns the supported units in display order.
func All() []Unit {
	return []Unit{Milliliter, Teaspoon, Tablespoon, FluidOunce, Cup}
}

// Known reports whether u is one of the five supported units.
func Known(u Unit) bool {
	_, ok := toMilliliters[u]
	return ok
}

// Factor returns the milliliter equivalent of one of u. An unrecognized unit
// converts as milliliters (factor 1) rather than failing.
func Factor(u Unit) float64 {
	if f, ok := toMilliliters[u]; ok {
		return f
	}
	return 1
}

// Volume is an amount paired with its unit.
type Volume struct {
	Amount float64 `yaml:"amount" json:"amount"`
	Unit   Unit    `yaml:"unit" json:"unit"`
}

// Milliliters converts the volume to milliliters using the fixed table.
func (v Volume) Milliliters() float64 {
	return v.Amount * Factor(v.Unit)
}
