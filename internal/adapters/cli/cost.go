package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prun-cogm/internal/application/cost/queries"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// NewCostCommand creates the cost command
func NewCostCommand() *cobra.Command {
	var flags recipeFlags
	var color bool

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Price one run of a recipe",
		Long: `Price one run of a recipe: input materials, workforce consumables for the
run and the run's share of building repair.

Examples:
  prun cost --item OVE --planet UV-351a
  prun cost --recipe "BMP:100xPE-25xPG=>20xOVE" --planet Katoa --experts manufacturing=3 --program manufacturing
  prun cost --item OVE --planet UV-351a --price PE=75 --price PG=110`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			experts, err := parseExperts(flags.experts)
			if err != nil {
				return err
			}
			overrides, err := parsePriceOverrides(flags.prices)
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			response, err := a.send(context.Background(), &queries.CalculateRecipeCostQuery{
				ItemSymbol:     flags.item,
				RecipeSymbol:   flags.recipe,
				Planet:         flags.planet,
				Experts:        experts,
				Program:        flags.program,
				ExchangeCode:   a.exchange(),
				PriceOverrides: overrides,
			})
			if err != nil {
				return describeError(err)
			}

			result, ok := response.(*queries.CalculateRecipeCostResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			fmt.Printf("\n=== Recipe cost on %s ===\n\n", a.exchange())
			fmt.Print(NewTreeFormatter(color).FormatTree(recipeCostTree(result.Cost)))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&color, "color", false, "Colorize the breakdown")

	return cmd
}

// NewCOGMCommand creates the cogm command
func NewCOGMCommand() *cobra.Command {
	var flags recipeFlags
	var output string
	var color bool

	cmd := &cobra.Command{
		Use:   "cogm",
		Short: "Cost of goods manufactured per unit of output",
		Long: `Spread the cost of one recipe run over the units of one of its outputs.

The output defaults to --item, or to the only output of the recipe.

Examples:
  prun cogm --item OVE --planet UV-351a
  prun cogm --recipe "BMP:100xPE-25xPG=>20xOVE" --planet Katoa --experts manufacturing=5
  prun cogm --item LST --planet UV-351a --experts "resource extraction=2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			experts, err := parseExperts(flags.experts)
			if err != nil {
				return err
			}
			overrides, err := parsePriceOverrides(flags.prices)
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			response, err := a.send(context.Background(), &queries.CalculateCOGMQuery{
				ItemSymbol:     flags.item,
				RecipeSymbol:   flags.recipe,
				OutputSymbol:   output,
				Planet:         flags.planet,
				Experts:        experts,
				Program:        flags.program,
				ExchangeCode:   a.exchange(),
				PriceOverrides: overrides,
			})
			if err != nil {
				return describeError(err)
			}

			result, ok := response.(*queries.CalculateCOGMResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			fmt.Printf("\n=== COGM on %s ===\n", a.exchange())
			fmt.Printf("Recipe:     %s\n", result.Recipe.Symbol())
			fmt.Printf("Duration:   %s\n", formatDuration(result.Recipe.Duration()))
			fmt.Printf("Efficiency: %s\n\n", formatPercent(result.Recipe.Efficiency()))
			fmt.Print(NewTreeFormatter(color).FormatTree(cogmTree(result.COGM)))
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&output, "output", "", "Output item to cost (for recipes with several outputs)")
	cmd.Flags().BoolVar(&color, "color", false, "Colorize the breakdown")

	return cmd
}

// describeError prints the recipe candidates of an ambiguous lookup before
// returning the error
func describeError(err error) error {
	var multiple *production.MultipleRecipesFoundError
	if errors.As(err, &multiple) {
		printCandidates(multiple)
	}
	return err
}
