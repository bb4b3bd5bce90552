package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "infuse",
		Short: "Cannabinoid dosage calculator for home-made infusions",
	}

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(examplesCmd())
	rootCmd.AddCommand(unitsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func calcCmd() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute dosage from command-line measurements",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCalc(opts)
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&opts.Grams, "grams", 0, "dry cannabis mass in grams")
	fs.Float64Var(&opts.THC, "thc", 0, "THC percentage of dry mass")
	fs.Float64Var(&opts.THCA, "thca", 0, "THCA percentage of dry mass")
	fs.Float64Var(&opts.Efficiency, "efficiency", 75, "extraction efficiency percentage")
	fs.Float64Var(&opts.TotalBaseMade, "totalBaseMade", 0, "total volume of base produced")
	fs.StringVar(&opts.TotalBaseUnit, "totalBaseUnit", "ml", "unit of the total base volume")
	fs.Float64Var(&opts.BaseUsed, "baseUsed", 0, "volume of base used in the recipe")
	fs.StringVar(&opts.RecipeUnit, "recipeUnit", "ml", "unit of the recipe base volume")
	fs.Float64Var(&opts.Servings, "servings", 0, "number of servings the recipe yields")
	fs.BoolVar(&opts.JSON, "json", false, "emit the report as JSON")

	return cmd
}

func batchCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "batch [batch.yaml]",
		Short: "Compute dosage from a batch description file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBatch(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [batch.yaml]",
		Short: "Validate a batch description without computing dosage",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show worked example calculations",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printExamples()
		},
	}
}

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Show the supported volume units and their ml equivalents",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printUnitTable()
		},
	}
}
