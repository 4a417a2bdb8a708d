package cost

import (
	"time"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
	"github.com/andrescamacho/prun-cogm/pkg/utils"
)

// CalculatedInput is one priced material line
type CalculatedInput struct {
	ItemSymbol string
	Quantity   float64
	Price      float64
	Total      float64
}

// NewCalculatedInput prices a quantity of an item
func NewCalculatedInput(itemSymbol string, quantity, price float64) CalculatedInput {
	return CalculatedInput{
		ItemSymbol: itemSymbol,
		Quantity:   quantity,
		Price:      price,
		Total:      utils.RoundMoney(quantity * price),
	}
}

// CalculatedInputCosts is the material cost of one run
type CalculatedInputCosts struct {
	Inputs []CalculatedInput
	Total  float64
}

// CalculatedWorkforceNeedCost is the consumable cost of one workforce tier
type CalculatedWorkforceNeedCost struct {
	WorkforceType production.WorkforceType
	Count         int
	Inputs        []CalculatedInput
	Total         float64
}

// CalculatedWorkforceCosts is the consumable cost across all tiers
type CalculatedWorkforceCosts struct {
	Needs []CalculatedWorkforceNeedCost
	Total float64
}

// CalculatedRepairCosts is the run's share of building repair
type CalculatedRepairCosts struct {
	DaysSinceRepair int
	Inputs          []CalculatedInput
	Total           float64
}

// CalculatedRecipeCost is the full cost of one production run
type CalculatedRecipeCost struct {
	RecipeSymbol    string
	BuildingSymbol  string
	PlanetNaturalID string
	Efficiency      float64
	Duration        time.Duration
	Outputs         []production.RecipeLine
	InputCosts      CalculatedInputCosts
	WorkforceCosts  CalculatedWorkforceCosts
	RepairCosts     CalculatedRepairCosts
	Total           float64
}

// SumTotal returns the grand total from the reported sub-totals
func SumTotal(inputs, workforce, repair float64) float64 {
	return utils.RoundMoney(inputs + workforce + repair)
}

// CalculatedRecipeOutputCOGM is the per-unit cost of one recipe output
type CalculatedRecipeOutputCOGM struct {
	RecipeSymbol    string
	ItemSymbol      string
	PlanetNaturalID string
	OutputQuantity  float64
	InputCosts      CalculatedInputCosts
	WorkforceCosts  CalculatedWorkforceCosts
	RepairCosts     CalculatedRepairCosts
	Total           float64
}

// PerUnit spreads the run cost over the output quantity of itemSymbol. Each
// reported amount is divided and rounded to cents on its own.
func (c *CalculatedRecipeCost) PerUnit(itemSymbol string) (*CalculatedRecipeOutputCOGM, error) {
	var quantity float64
	found := false
	for _, out := range c.Outputs {
		if out.ItemSymbol == itemSymbol {
			quantity = out.Quantity
			found = true
			break
		}
	}
	if !found || quantity <= 0 {
		return nil, &production.OutputNotFoundError{RecipeSymbol: c.RecipeSymbol, ItemSymbol: itemSymbol}
	}

	workforce := CalculatedWorkforceCosts{
		Needs: make([]CalculatedWorkforceNeedCost, len(c.WorkforceCosts.Needs)),
		Total: utils.DivideMoney(c.WorkforceCosts.Total, quantity),
	}
	for i, need := range c.WorkforceCosts.Needs {
		workforce.Needs[i] = CalculatedWorkforceNeedCost{
			WorkforceType: need.WorkforceType,
			Count:         need.Count,
			Inputs:        divideInputs(need.Inputs, quantity),
			Total:         utils.DivideMoney(need.Total, quantity),
		}
	}

	return &CalculatedRecipeOutputCOGM{
		RecipeSymbol:    c.RecipeSymbol,
		ItemSymbol:      itemSymbol,
		PlanetNaturalID: c.PlanetNaturalID,
		OutputQuantity:  quantity,
		InputCosts: CalculatedInputCosts{
			Inputs: divideInputs(c.InputCosts.Inputs, quantity),
			Total:  utils.DivideMoney(c.InputCosts.Total, quantity),
		},
		WorkforceCosts: workforce,
		RepairCosts: CalculatedRepairCosts{
			DaysSinceRepair: c.RepairCosts.DaysSinceRepair,
			Inputs:          divideInputs(c.RepairCosts.Inputs, quantity),
			Total:           utils.DivideMoney(c.RepairCosts.Total, quantity),
		},
		Total: utils.DivideMoney(c.Total, quantity),
	}, nil
}

func divideInputs(inputs []CalculatedInput, quantity float64) []CalculatedInput {
	out := make([]CalculatedInput, len(inputs))
	for i, in := range inputs {
		out[i] = CalculatedInput{
			ItemSymbol: in.ItemSymbol,
			Quantity:   in.Quantity / quantity,
			Price:      in.Price,
			Total:      utils.DivideMoney(in.Total, quantity),
		}
	}
	return out
}

// CalculatedPlanetCOGM groups the output costs computed for one planet
type CalculatedPlanetCOGM struct {
	PlanetNaturalID string
	PlanetName      string
	Outputs         []*CalculatedRecipeOutputCOGM
}

// CalculatedEmpireCOGM is the result of a whole empire evaluation
type CalculatedEmpireCOGM struct {
	RunID        string
	Name         string
	Planets      []CalculatedPlanetCOGM
	CachedPrices map[string]float64
}
