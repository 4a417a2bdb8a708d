package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// recipeFlags are the flags shared by the commands that evaluate one recipe
type recipeFlags struct {
	item    string
	recipe  string
	planet  string
	experts []string
	program string
	prices  []string
}

func (f *recipeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.item, "item", "", "Item to produce (e.g. OVE)")
	cmd.Flags().StringVar(&f.recipe, "recipe", "", "Recipe symbol (e.g. \"BMP:100xPE-25xPG=>20xOVE\")")
	cmd.Flags().StringVar(&f.planet, "planet", "", "Planet natural id or name (required)")
	cmd.Flags().StringSliceVar(&f.experts, "experts", nil, "Experts per category, as category=count (repeatable)")
	cmd.Flags().StringVar(&f.program, "program", "", "Active COGC program (an expertise category)")
	cmd.Flags().StringSliceVar(&f.prices, "price", nil, "Manual buy price, as ITEM=price (repeatable)")
}

func (f *recipeFlags) validate() error {
	if f.item == "" && f.recipe == "" {
		return fmt.Errorf("--item or --recipe is required")
	}
	if f.planet == "" {
		return fmt.Errorf("--planet is required")
	}
	return nil
}

// parseExperts parses "category=count" pairs
func parseExperts(values []string) (production.Experts, error) {
	counts := make(map[string]int, len(values))
	for _, value := range values {
		name, raw, ok := strings.Cut(value, "=")
		if !ok {
			return nil, fmt.Errorf("invalid expert assignment %q: expected category=count", value)
		}
		count, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid expert count in %q", value)
		}
		counts[strings.TrimSpace(name)] += count
	}
	return production.NewExperts(counts)
}

// parsePriceOverrides parses "ITEM=price" pairs
func parsePriceOverrides(values []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(values))
	for _, value := range values {
		item, raw, ok := strings.Cut(value, "=")
		if !ok {
			return nil, fmt.Errorf("invalid price %q: expected ITEM=price", value)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("invalid price in %q", value)
		}
		prices[strings.ToUpper(strings.TrimSpace(item))] = price
	}
	return prices, nil
}
