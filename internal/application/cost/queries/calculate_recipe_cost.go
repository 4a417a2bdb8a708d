package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/prun-cogm/internal/application/cost/services"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/market"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// CalculateRecipeCostQuery asks for the cost of one production run
type CalculateRecipeCostQuery struct {
	ItemSymbol     string
	RecipeSymbol   string
	Planet         string
	Experts        production.Experts
	Program        string
	ExchangeCode   string
	PriceOverrides map[string]float64
}

// CalculateRecipeCostResponse carries the run cost and the recipe it was computed for
type CalculateRecipeCostResponse struct {
	Recipe *production.EfficientRecipe
	Cost   *cost.CalculatedRecipeCost
}

// CalculateRecipeCostHandler handles the CalculateRecipeCost query
type CalculateRecipeCostHandler struct {
	resolver   *services.RecipeResolver
	efficiency *services.EfficiencyService
	calculator *services.CostCalculator
	planets    production.PlanetRepository
	prices     market.PriceRepository
}

// NewCalculateRecipeCostHandler creates a new CalculateRecipeCostHandler
func NewCalculateRecipeCostHandler(
	resolver *services.RecipeResolver,
	efficiency *services.EfficiencyService,
	calculator *services.CostCalculator,
	planets production.PlanetRepository,
	prices market.PriceRepository,
) *CalculateRecipeCostHandler {
	return &CalculateRecipeCostHandler{
		resolver:   resolver,
		efficiency: efficiency,
		calculator: calculator,
		planets:    planets,
		prices:     prices,
	}
}

// Handle executes the CalculateRecipeCost query
func (h *CalculateRecipeCostHandler) Handle(ctx context.Context, request mediator.Request) (response mediator.Response, err error) {
	query, ok := request.(*CalculateRecipeCostQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CalculateRecipeCostQuery")
	}

	start := time.Now()
	defer func() { observe("recipe_cost", start, err) }()

	planet, err := resolvePlanet(ctx, h.planets, query.Planet)
	if err != nil {
		return nil, err
	}

	recipe, err := h.resolver.FindRecipe(ctx, query.ItemSymbol, query.RecipeSymbol, planet)
	if err != nil {
		return nil, err
	}

	efficient, err := h.efficiency.Apply(ctx, recipe, query.Experts, query.Program)
	if err != nil {
		return nil, err
	}

	prices := newPriceBook(h.prices, query.ExchangeCode, query.PriceOverrides)
	recipeCost, err := h.calculator.CalculateRecipeCost(ctx, efficient, planet, prices)
	if err != nil {
		return nil, err
	}

	return &CalculateRecipeCostResponse{Recipe: efficient, Cost: recipeCost}, nil
}
