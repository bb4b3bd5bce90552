package main

import (
	"fmt"

	"github.com/dosecraft/infuse/pkg/batch"
	"github.com/dosecraft/infuse/pkg/dose"
	"github.com/dosecraft/infuse/pkg/units"
	"github.com/dosecraft/infuse/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printDoseReport(b *batch.Batch, r *dose.Report) {
	fmt.Println("Infusion Dosage Report")
	fmt.Println("======================")
	fmt.Println()

	fmt.Println("Batch")
	fmt.Println("-----")
	fmt.Printf("  %-22s %10.2f g\n", "Cannabis mass:", b.CannabisGrams)
	fmt.Printf("  %-22s %10.2f %%\n", "THC:", b.THCPercent)
	fmt.Printf("  %-22s %10.2f %%\n", "THCA:", b.THCAPercent)
	fmt.Printf("  %-22s %10.2f %%\n", "Extraction yield:", b.Efficiency())
	fmt.Printf("  %-22s %10.2f %s\n", "Base made:", b.TotalBaseMade.Amount, b.TotalBaseMade.Unit)
	fmt.Printf("  %-22s %10.2f %s\n", "Base in recipe:", b.BaseUsed.Amount, b.BaseUsed.Unit)
	fmt.Printf("  %-22s %10.2f\n", "Servings:", b.Servings)
	fmt.Println()

	fmt.Println("Dosage")
	fmt.Println("------")
	fmt.Printf("  %-22s %10.2f mg\n", "Total THC extracted:", r.TotalTHCMg)
	fmt.Printf("  %-22s %10.2f mg/ml\n", "Concentration:", r.MgPerMl)
	fmt.Printf("  %-22s %10.2f mg\n", "THC in recipe:", r.TotalTHCInRecipeMg)
	fmt.Printf("  %-22s %10.2f mg\n", "Per serving:", r.MgPerServing)
	fmt.Println()

	fmt.Println("Concentration per measure")
	fmt.Println("-------------------------")
	for _, u := range units.All() {
		fmt.Printf("  1 %-6s %12.2f mg\n", u, r.MgPerUnit[u])
	}
}

func printUnitTable() {
	fmt.Println("Supported volume units")
	fmt.Println("======================")
	fmt.Printf("%-8s %12s\n", "Unit", "Milliliters")
	fmt.Printf("%-8s %12s\n", "--------", "------------")
	for _, u := range units.All() {
		fmt.Printf("%-8s %12.5f\n", u, units.Factor(u))
	}
}

// printExamples runs two preset batches through the calculator so the text
// always matches what calc would report.
func printExamples() {
	oil := batch.Batch{
		CannabisGrams: 7,
		THCPercent:    21.5,
		TotalBaseMade: units.Volume{Amount: 1, Unit: units.Cup},
		BaseUsed:      units.Volume{Amount: 0.5, Unit: units.Cup},
		Servings:      10,
	}.WithEfficiency(75)

	tincture := batch.Batch{
		CannabisGrams: 5,
		THCPercent:    18,
		THCAPercent:   2.5,
		TotalBaseMade: units.Volume{Amount: 250, Unit: units.Milliliter},
		BaseUsed:      units.Volume{Amount: 50, Unit: units.Milliliter},
		Servings:      8,
	}.WithEfficiency(70)

	fmt.Println("Example 1: a cup of canna-oil, half used in a 10-cookie recipe")
	fmt.Println()
	fmt.Println("  infuse calc --grams 7 --thc 21.5 \\")
	fmt.Println("    --totalBaseMade 1 --totalBaseUnit cup \\")
	fmt.Println("    --baseUsed 0.5 --recipeUnit cup --servings 10")
	fmt.Println()
	printDoseReport(&oil, dose.Calculate(&oil))

	fmt.Println()
	fmt.Println("Example 2: 250 ml tincture with lab-tested THC and THCA")
	fmt.Println()
	fmt.Println("  infuse calc --grams 5 --thc 18 --thca 2.5 --efficiency 70 \\")
	fmt.Println("    --totalBaseMade 250 --baseUsed 50 --servings 8")
	fmt.Println()
	printDoseReport(&tincture, dose.Calculate(&tincture))
}
