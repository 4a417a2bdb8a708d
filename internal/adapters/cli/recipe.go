package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prun-cogm/internal/application/cost/queries"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// NewRecipeCommand creates the recipe command with subcommands
func NewRecipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Look up recipes",
	}

	cmd.AddCommand(newRecipeFindCommand())

	return cmd
}

// newRecipeFindCommand creates the recipe find subcommand
func newRecipeFindCommand() *cobra.Command {
	var item, recipeSymbol, planet string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the recipe producing an item",
		Long: `Resolve the recipe producing an item.

When several recipes produce the item the candidates are listed and one must
be picked with --recipe. Items no recipe produces are extracted from the
planet given with --planet.

Examples:
  prun recipe find --item OVE
  prun recipe find --item LST --planet UV-351a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if item == "" && recipeSymbol == "" {
				return fmt.Errorf("--item or --recipe is required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			response, err := a.send(context.Background(), &queries.FindRecipeQuery{
				ItemSymbol:   item,
				RecipeSymbol: recipeSymbol,
				Planet:       planet,
			})
			if err != nil {
				return describeError(err)
			}

			result, ok := response.(*queries.FindRecipeResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			printRecipe(result.Recipe)
			return nil
		},
	}

	cmd.Flags().StringVar(&item, "item", "", "Item to produce")
	cmd.Flags().StringVar(&recipeSymbol, "recipe", "", "Recipe symbol")
	cmd.Flags().StringVar(&planet, "planet", "", "Planet natural id or name (needed for extraction)")

	return cmd
}

func printRecipe(recipe *production.Recipe) {
	fmt.Printf("\n=== %s ===\n", recipe.Symbol())
	fmt.Printf("Building: %s\n", recipe.BuildingSymbol())
	fmt.Printf("Duration: %s\n", formatDuration(recipe.Duration()))
	if resource := recipe.Resource(); resource != nil {
		fmt.Printf("Deposit:  %s %s on %s (factor %.4f)\n",
			resource.ResourceType, resource.ItemSymbol, resource.PlanetNaturalID, resource.Factor)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIDE\tITEM\tQUANTITY")
	fmt.Fprintln(w, "----\t----\t--------")
	for _, line := range recipe.Inputs() {
		fmt.Fprintf(w, "input\t%s\t%s\n", line.ItemSymbol, formatQuantity(line.Quantity))
	}
	for _, line := range recipe.Outputs() {
		fmt.Fprintf(w, "output\t%s\t%s\n", line.ItemSymbol, formatQuantity(line.Quantity))
	}
	w.Flush()
}

func printCandidates(err *production.MultipleRecipesFoundError) {
	fmt.Printf("\nSeveral recipes produce %s, pick one with --recipe:\n\n", err.ItemSymbol)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECIPE\tBUILDING\tDURATION")
	fmt.Fprintln(w, "------\t--------\t--------")
	for _, candidate := range err.Candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\n", candidate.Symbol(), candidate.BuildingSymbol(), formatDuration(candidate.Duration()))
	}
	w.Flush()
	fmt.Println()
}
