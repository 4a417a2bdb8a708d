package services

import (
	"context"
	"fmt"

	"github.com/andrescamacho/prun-cogm/internal/adapters/metrics"
	"github.com/andrescamacho/prun-cogm/internal/application/logging"
	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
	"github.com/andrescamacho/prun-cogm/pkg/utils"
)

// COGMProjector turns run costs into per-unit costs, for one recipe or for a
// whole empire plan where earlier outputs feed later inputs.
type COGMProjector struct {
	resolver   *RecipeResolver
	efficiency *EfficiencyService
	calculator *CostCalculator
	planets    production.PlanetRepository
}

// NewCOGMProjector creates a new COGM projector
func NewCOGMProjector(
	resolver *RecipeResolver,
	efficiency *EfficiencyService,
	calculator *CostCalculator,
	planets production.PlanetRepository,
) *COGMProjector {
	return &COGMProjector{
		resolver:   resolver,
		efficiency: efficiency,
		calculator: calculator,
		planets:    planets,
	}
}

// CalculateCOGM returns the per-unit cost of itemSymbol produced by recipe
func (p *COGMProjector) CalculateCOGM(
	ctx context.Context,
	recipe *production.EfficientRecipe,
	planet *production.Planet,
	itemSymbol string,
	prices CostContext,
) (*cost.CalculatedRecipeOutputCOGM, error) {
	if _, ok := recipe.Output(itemSymbol); !ok {
		return nil, &production.OutputNotFoundError{RecipeSymbol: recipe.Symbol(), ItemSymbol: itemSymbol}
	}

	recipeCost, err := p.calculator.CalculateRecipeCost(ctx, recipe, planet, prices)
	if err != nil {
		return nil, err
	}

	return recipeCost.PerUnit(itemSymbol)
}

// resolvedPlanet pairs a plan entry with its planet
type resolvedPlanet struct {
	plan   cost.PlanetPlan
	planet *production.Planet
}

// CalculateEmpireCOGM evaluates every step of the plan twice, in plan order.
// The first pass only records computed prices so that a step can consume an
// output produced later in the plan; the second pass produces the report.
// Any failing step aborts the whole evaluation.
func (p *COGMProjector) CalculateEmpireCOGM(
	ctx context.Context,
	prices CostContext,
	plan *cost.EmpirePlan,
) (*cost.CalculatedEmpireCOGM, error) {
	logger := logging.LoggerFromContext(ctx)
	runID := utils.GenerateRunID("empire", plan.Name)

	planets := make([]resolvedPlanet, 0, len(plan.Planets))
	for _, planetPlan := range plan.Planets {
		planet, err := p.planets.FindPlanet(ctx, planetPlan.Planet)
		if err != nil {
			return nil, fmt.Errorf("failed to find planet %s: %w", planetPlan.Planet, err)
		}
		if planet == nil {
			return nil, &production.PlanetNotFoundError{Identifier: planetPlan.Planet}
		}
		planets = append(planets, resolvedPlanet{plan: planetPlan, planet: planet})
	}

	logger.Log(logging.LevelInfo, "empire evaluation started", map[string]interface{}{
		"run_id":  runID,
		"empire":  plan.Name,
		"planets": len(planets),
		"steps":   plan.StepCount(),
	})

	if _, err := p.evaluatePlan(ctx, prices, planets, runID, 1); err != nil {
		return nil, err
	}

	results, err := p.evaluatePlan(ctx, prices, planets, runID, 2)
	if err != nil {
		return nil, err
	}

	for _, planet := range results {
		for _, output := range planet.Outputs {
			metrics.RecordEmpireCOGM(output.ItemSymbol, output.Total)
		}
	}

	logger.Log(logging.LevelInfo, "empire evaluation finished", map[string]interface{}{
		"run_id": runID,
		"empire": plan.Name,
	})

	return &cost.CalculatedEmpireCOGM{
		RunID:   runID,
		Name:    plan.Name,
		Planets: results,
	}, nil
}

func (p *COGMProjector) evaluatePlan(
	ctx context.Context,
	prices CostContext,
	planets []resolvedPlanet,
	runID string,
	pass int,
) ([]cost.CalculatedPlanetCOGM, error) {
	logger := logging.LoggerFromContext(ctx)
	logger.Log(logging.LevelDebug, "empire pass started", map[string]interface{}{
		"run_id":  runID,
		"pass":    pass,
		"planets": len(planets),
	})

	results := make([]cost.CalculatedPlanetCOGM, 0, len(planets))
	for _, rp := range planets {
		planetCOGM, err := p.evaluatePlanet(ctx, prices, rp)
		if err != nil {
			return nil, fmt.Errorf("planet %s: %w", rp.planet.NaturalID, err)
		}
		results = append(results, *planetCOGM)
	}

	logger.Log(logging.LevelDebug, "empire pass finished", map[string]interface{}{
		"run_id": runID,
		"pass":   pass,
	})
	return results, nil
}

func (p *COGMProjector) evaluatePlanet(
	ctx context.Context,
	prices CostContext,
	rp resolvedPlanet,
) (*cost.CalculatedPlanetCOGM, error) {
	logger := logging.LoggerFromContext(ctx)
	result := &cost.CalculatedPlanetCOGM{
		PlanetNaturalID: rp.planet.NaturalID,
		PlanetName:      rp.planet.Name,
	}

	for _, step := range rp.plan.Steps {
		recipe, err := p.resolver.FindRecipe(ctx, step.ItemSymbol, step.RecipeSymbol, rp.planet)
		if err != nil {
			return nil, err
		}
		if step.BuildingSymbol != "" && step.BuildingSymbol != recipe.BuildingSymbol() {
			return nil, fmt.Errorf("recipe %s runs in %s, not %s",
				recipe.Symbol(), recipe.BuildingSymbol(), step.BuildingSymbol)
		}

		efficient, err := p.efficiency.Apply(ctx, recipe, rp.plan.Experts, rp.plan.Program)
		if err != nil {
			return nil, err
		}

		recipeCost, err := p.calculator.CalculateRecipeCost(ctx, efficient, rp.planet, prices)
		if err != nil {
			return nil, err
		}

		for _, output := range recipe.Outputs() {
			cogm, err := recipeCost.PerUnit(output.ItemSymbol)
			if err != nil {
				return nil, err
			}

			stored, err := prices.RecordCOGMPrice(ctx, output.ItemSymbol, cogm.Total)
			if err != nil {
				return nil, err
			}
			metrics.RecordPriceCacheWrite(stored)
			logger.Log(logging.LevelDebug, "cogm price offered", map[string]interface{}{
				"item":   output.ItemSymbol,
				"price":  cogm.Total,
				"stored": stored,
			})

			result.Outputs = append(result.Outputs, cogm)
		}
	}

	return result, nil
}
