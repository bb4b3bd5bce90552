package dose

// Fixed chemistry constants for the dosage model.
const (
	// DecarbFactor converts a THCA percentage to its THC equivalent.
	// THCA loses a carboxyl group when heated; the molar mass ratio
	// THC/THCA is 314.46/358.48.
	DecarbFactor = 0.877

	// MgPerGram converts plant mass in grams to milligrams.
	MgPerGram = 1000.0
)
