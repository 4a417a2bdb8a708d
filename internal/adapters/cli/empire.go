package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prun-cogm/internal/adapters/planfile"
	"github.com/andrescamacho/prun-cogm/internal/application/cost/queries"
)

// NewEmpireCommand creates the empire command
func NewEmpireCommand() *cobra.Command {
	var planPath string
	var showPrices bool

	cmd := &cobra.Command{
		Use:   "empire",
		Short: "COGM of every output of an empire plan",
		Long: `Evaluate an empire plan: every planet's production steps, in order, with
computed output costs replacing market prices wherever they are cheaper.

The plan is evaluated twice so that a step consuming an output produced
later in the plan sees its computed cost.

Plan file:
  name: my-empire
  planets:
    - natural_id: UV-351a
      program: manufacturing
      experts: {MANUFACTURING: 3}
      recipes:
        - building_symbol: EXT
          item_symbol: LST
        - building_symbol: BMP
          recipe_symbol: "BMP:100xPE-25xPG=>20xOVE"
  material_buy_prices: {PG: 110}

Examples:
  prun empire --plan empire.yaml
  prun empire --plan empire.yaml --exchange CI1 --prices`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planPath == "" {
				return fmt.Errorf("--plan flag is required")
			}

			plan, err := planfile.LoadFile(planPath)
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			response, err := a.send(context.Background(), &queries.CalculateEmpireCOGMQuery{
				Plan:         plan,
				ExchangeCode: a.exchange(),
			})
			if err != nil {
				return describeError(err)
			}

			result, ok := response.(*queries.CalculateEmpireCOGMResponse)
			if !ok {
				return fmt.Errorf("unexpected response type")
			}

			empire := result.Result
			name := empire.Name
			if name == "" {
				name = planPath
			}
			fmt.Printf("\n=== Empire COGM: %s (%s) ===\n", name, a.exchange())
			fmt.Printf("Run: %s\n\n", empire.RunID)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PLANET\tRECIPE\tITEM\tQTY\tINPUTS\tWORKFORCE\tREPAIR\tCOGM")
			fmt.Fprintln(w, "------\t------\t----\t---\t------\t---------\t------\t----")
			for _, planet := range empire.Planets {
				for _, output := range planet.Outputs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						planet.PlanetNaturalID,
						output.RecipeSymbol,
						output.ItemSymbol,
						formatQuantity(output.OutputQuantity),
						formatMoney(output.InputCosts.Total),
						formatMoney(output.WorkforceCosts.Total),
						formatMoney(output.RepairCosts.Total),
						formatMoney(output.Total),
					)
				}
			}
			w.Flush()

			if showPrices {
				printCachedPrices(empire.CachedPrices)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "Path to the empire plan YAML file")
	cmd.Flags().BoolVar(&showPrices, "prices", false, "Also list the computed prices used instead of market prices")

	return cmd
}

func printCachedPrices(prices map[string]float64) {
	items := make([]string, 0, len(prices))
	for item := range prices {
		items = append(items, item)
	}
	sort.Strings(items)

	fmt.Printf("\nComputed prices used instead of the market:\n\n")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tPRICE")
	fmt.Fprintln(w, "----\t-----")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\n", item, formatMoney(prices[item]))
	}
	w.Flush()
}
