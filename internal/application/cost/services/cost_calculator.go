package services

import (
	"context"
	"fmt"

	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
	"github.com/andrescamacho/prun-cogm/pkg/utils"
)

// DefaultDaysSinceRepair assumes fully degraded buildings, the steady state
// of a base repaired every amortization window.
const DefaultDaysSinceRepair = production.RepairWindowDays

// CostContext resolves buy prices and records computed COGM prices for the
// scope of one evaluation.
type CostContext interface {
	BuyPrice(ctx context.Context, itemSymbol string) (float64, error)
	RecordCOGMPrice(ctx context.Context, itemSymbol string, price float64) (bool, error)
}

// CostCalculator prices one production run: materials, workforce
// consumables and the run's share of building repair.
type CostCalculator struct {
	catalog         production.CatalogRepository
	workforce       production.WorkforceRepository
	daysSinceRepair int
}

// NewCostCalculator creates a calculator assuming the given days since the
// buildings were last repaired.
func NewCostCalculator(
	catalog production.CatalogRepository,
	workforce production.WorkforceRepository,
	daysSinceRepair int,
) *CostCalculator {
	return &CostCalculator{
		catalog:         catalog,
		workforce:       workforce,
		daysSinceRepair: daysSinceRepair,
	}
}

// CalculateRecipeCost prices one run of recipe on planet
func (c *CostCalculator) CalculateRecipeCost(
	ctx context.Context,
	recipe *production.EfficientRecipe,
	planet *production.Planet,
	prices CostContext,
) (*cost.CalculatedRecipeCost, error) {
	if planet == nil {
		return nil, &production.PlanetBuildingRequiredError{
			RecipeSymbol:   recipe.Symbol(),
			BuildingSymbol: recipe.BuildingSymbol(),
		}
	}

	building, err := c.catalog.FindBuilding(ctx, recipe.BuildingSymbol())
	if err != nil {
		return nil, fmt.Errorf("failed to find building %s: %w", recipe.BuildingSymbol(), err)
	}
	if building == nil {
		return nil, &production.BuildingNotFoundError{Symbol: recipe.BuildingSymbol()}
	}

	inputCosts, err := c.inputCosts(ctx, recipe, prices)
	if err != nil {
		return nil, err
	}

	workforceCosts, err := c.workforceCosts(ctx, recipe, building, prices)
	if err != nil {
		return nil, err
	}

	repairCosts, err := c.repairCosts(ctx, recipe, production.NewPlanetBuilding(building, planet), prices)
	if err != nil {
		return nil, err
	}

	return &cost.CalculatedRecipeCost{
		RecipeSymbol:    recipe.Symbol(),
		BuildingSymbol:  recipe.BuildingSymbol(),
		PlanetNaturalID: planet.NaturalID,
		Efficiency:      recipe.Efficiency(),
		Duration:        recipe.Duration(),
		Outputs:         recipe.Outputs(),
		InputCosts:      *inputCosts,
		WorkforceCosts:  *workforceCosts,
		RepairCosts:     *repairCosts,
		Total:           cost.SumTotal(inputCosts.Total, workforceCosts.Total, repairCosts.Total),
	}, nil
}

func (c *CostCalculator) inputCosts(
	ctx context.Context,
	recipe *production.EfficientRecipe,
	prices CostContext,
) (*cost.CalculatedInputCosts, error) {
	lines := recipe.Inputs()
	result := &cost.CalculatedInputCosts{Inputs: make([]cost.CalculatedInput, 0, len(lines))}

	raw := 0.0
	for _, line := range lines {
		price, err := prices.BuyPrice(ctx, line.ItemSymbol)
		if err != nil {
			return nil, err
		}
		result.Inputs = append(result.Inputs, cost.NewCalculatedInput(line.ItemSymbol, line.Quantity, price))
		raw += line.Quantity * price
	}

	result.Total = utils.RoundMoney(raw)
	return result, nil
}

func (c *CostCalculator) workforceCosts(
	ctx context.Context,
	recipe *production.EfficientRecipe,
	building *production.Building,
	prices CostContext,
) (*cost.CalculatedWorkforceCosts, error) {
	days := recipe.DurationDays()
	result := &cost.CalculatedWorkforceCosts{}

	raw := 0.0
	for _, tier := range building.StaffedTiers() {
		needs, err := c.workforce.FindNeeds(ctx, tier.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to find %s needs: %w", tier.Type, err)
		}

		tierCost := cost.CalculatedWorkforceNeedCost{
			WorkforceType: tier.Type,
			Count:         tier.Count,
			Inputs:        make([]cost.CalculatedInput, 0, len(needs)),
		}

		tierRaw := 0.0
		for _, need := range needs {
			price, err := prices.BuyPrice(ctx, need.ItemSymbol)
			if err != nil {
				return nil, err
			}
			quantity := need.NeedForDuration(tier.Count, days)
			tierCost.Inputs = append(tierCost.Inputs, cost.NewCalculatedInput(need.ItemSymbol, quantity, price))
			tierRaw += quantity * price
		}

		tierCost.Total = utils.RoundMoney(tierRaw)
		result.Needs = append(result.Needs, tierCost)
		raw += tierRaw
	}

	result.Total = utils.RoundMoney(raw)
	return result, nil
}

func (c *CostCalculator) repairCosts(
	ctx context.Context,
	recipe *production.EfficientRecipe,
	planetBuilding *production.PlanetBuilding,
	prices CostContext,
) (*cost.CalculatedRepairCosts, error) {
	result := &cost.CalculatedRepairCosts{DaysSinceRepair: c.daysSinceRepair}

	// Share of the amortization window one run occupies
	runShare := recipe.DurationHours() / 24 / production.RepairWindowDays

	windowTotal := 0.0
	for _, line := range planetBuilding.ConstructionCosts() {
		amount := line.RepairAmount(c.daysSinceRepair)
		if amount <= 0 {
			continue
		}
		price, err := prices.BuyPrice(ctx, line.ItemSymbol)
		if err != nil {
			return nil, err
		}
		result.Inputs = append(result.Inputs, cost.NewCalculatedInput(line.ItemSymbol, amount*runShare, price))
		windowTotal += amount * price
	}

	daily := windowTotal / production.RepairWindowDays
	result.Total = utils.RoundMoney(daily * (recipe.DurationHours() / 24))
	return result, nil
}
