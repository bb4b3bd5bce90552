package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dosecraft/infuse/pkg/batch"
	"github.com/dosecraft/infuse/pkg/dose"
	"github.com/dosecraft/infuse/pkg/units"
	"github.com/dosecraft/infuse/pkg/validation"
)

// calcOptions holds the raw flag values for the calc subcommand.
type calcOptions struct {
	Grams         float64
	THC           float64
	THCA          float64
	Efficiency    float64
	TotalBaseMade float64
	TotalBaseUnit string
	BaseUsed      float64
	RecipeUnit    string
	Servings      float64
	JSON          bool
}

func (o calcOptions) batch() *batch.Batch {
	b := batch.Batch{
		CannabisGrams: o.Grams,
		THCPercent:    o.THC,
		THCAPercent:   o.THCA,
		TotalBaseMade: units.Volume{Amount: o.TotalBaseMade, Unit: units.Unit(o.TotalBaseUnit)},
		BaseUsed:      units.Volume{Amount: o.BaseUsed, Unit: units.Unit(o.RecipeUnit)},
		Servings:      o.Servings,
	}.WithEfficiency(o.Efficiency)
	return &b
}

func runCalc(opts calcOptions) error {
	return compute(opts.batch(), opts.JSON)
}

func runBatch(path string, jsonOut bool) error {
	b, err := batch.Load(path)
	if err != nil {
		return err
	}
	return compute(b, jsonOut)
}

// compute validates a batch, runs the calculator and renders the report.
func compute(b *batch.Batch, jsonOut bool) error {
	report := validation.ValidateBatch(b)
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("batch has validation errors")
	}

	result := dose.Calculate(b)

	if jsonOut {
		output := map[string]any{
			"batch":      b,
			"validation": report,
			"dosage":     result,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	printDoseReport(b, result)

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runValidate(path string) error {
	b, err := batch.Load(path)
	if err != nil {
		return err
	}

	report := validation.ValidateBatch(b)
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}
