package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/prun-cogm/internal/application/cost/services"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// FindRecipeQuery asks for the recipe producing an item
type FindRecipeQuery struct {
	ItemSymbol   string
	RecipeSymbol string
	Planet       string
}

// FindRecipeResponse carries the resolved recipe
type FindRecipeResponse struct {
	Recipe *production.Recipe
	Planet *production.Planet
}

// FindRecipeHandler handles the FindRecipe query
type FindRecipeHandler struct {
	resolver *services.RecipeResolver
	planets  production.PlanetRepository
}

// NewFindRecipeHandler creates a new FindRecipeHandler
func NewFindRecipeHandler(resolver *services.RecipeResolver, planets production.PlanetRepository) *FindRecipeHandler {
	return &FindRecipeHandler{
		resolver: resolver,
		planets:  planets,
	}
}

// Handle executes the FindRecipe query
func (h *FindRecipeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*FindRecipeQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *FindRecipeQuery")
	}

	planet, err := resolvePlanet(ctx, h.planets, query.Planet)
	if err != nil {
		return nil, err
	}

	recipe, err := h.resolver.FindRecipe(ctx, query.ItemSymbol, query.RecipeSymbol, planet)
	if err != nil {
		return nil, err
	}

	return &FindRecipeResponse{Recipe: recipe, Planet: planet}, nil
}
