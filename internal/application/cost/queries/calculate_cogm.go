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

// CalculateCOGMQuery asks for the per-unit cost of one recipe output.
// OutputSymbol defaults to ItemSymbol, or to the only output of the recipe.
type CalculateCOGMQuery struct {
	ItemSymbol     string
	RecipeSymbol   string
	OutputSymbol   string
	Planet         string
	Experts        production.Experts
	Program        string
	ExchangeCode   string
	PriceOverrides map[string]float64
}

// CalculateCOGMResponse carries the per-unit cost
type CalculateCOGMResponse struct {
	Recipe *production.EfficientRecipe
	COGM   *cost.CalculatedRecipeOutputCOGM
}

// CalculateCOGMHandler handles the CalculateCOGM query
type CalculateCOGMHandler struct {
	resolver   *services.RecipeResolver
	efficiency *services.EfficiencyService
	projector  *services.COGMProjector
	planets    production.PlanetRepository
	prices     market.PriceRepository
}

// NewCalculateCOGMHandler creates a new CalculateCOGMHandler
func NewCalculateCOGMHandler(
	resolver *services.RecipeResolver,
	efficiency *services.EfficiencyService,
	projector *services.COGMProjector,
	planets production.PlanetRepository,
	prices market.PriceRepository,
) *CalculateCOGMHandler {
	return &CalculateCOGMHandler{
		resolver:   resolver,
		efficiency: efficiency,
		projector:  projector,
		planets:    planets,
		prices:     prices,
	}
}

// Handle executes the CalculateCOGM query
func (h *CalculateCOGMHandler) Handle(ctx context.Context, request mediator.Request) (response mediator.Response, err error) {
	query, ok := request.(*CalculateCOGMQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CalculateCOGMQuery")
	}

	start := time.Now()
	defer func() { observe("cogm", start, err) }()

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

	output := outputSymbol(query, recipe)
	prices := newPriceBook(h.prices, query.ExchangeCode, query.PriceOverrides)
	cogm, err := h.projector.CalculateCOGM(ctx, efficient, planet, output, prices)
	if err != nil {
		return nil, err
	}

	return &CalculateCOGMResponse{Recipe: efficient, COGM: cogm}, nil
}

func outputSymbol(query *CalculateCOGMQuery, recipe *production.Recipe) string {
	if query.OutputSymbol != "" {
		return query.OutputSymbol
	}
	if query.ItemSymbol != "" {
		return query.ItemSymbol
	}
	if outputs := recipe.Outputs(); len(outputs) == 1 {
		return outputs[0].ItemSymbol
	}
	return ""
}
