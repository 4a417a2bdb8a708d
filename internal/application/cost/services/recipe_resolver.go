package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// ErrRecipeQueryEmpty is returned when neither an item nor a recipe symbol is given
var ErrRecipeQueryEmpty = errors.New("an item symbol or a recipe symbol is required")

// RecipeResolver finds the unique recipe producing an item, instantiating
// extraction recipes against planet deposits when needed.
type RecipeResolver struct {
	catalog production.CatalogRepository
}

// NewRecipeResolver creates a new recipe resolver
func NewRecipeResolver(catalog production.CatalogRepository) *RecipeResolver {
	return &RecipeResolver{catalog: catalog}
}

// FindRecipe resolves a recipe.
//
// An explicit recipeSymbol wins. Otherwise every recipe producing itemSymbol
// is looked up: exactly one is returned as is, several fail with
// MultipleRecipesFoundError and none fall back to extracting the item from
// the planet. Extraction recipes always need a planet and the extracted item.
func (r *RecipeResolver) FindRecipe(
	ctx context.Context,
	itemSymbol string,
	recipeSymbol string,
	planet *production.Planet,
) (*production.Recipe, error) {
	if recipeSymbol != "" {
		recipe, err := r.catalog.FindRecipe(ctx, recipeSymbol)
		if err != nil {
			return nil, fmt.Errorf("failed to find recipe %s: %w", recipeSymbol, err)
		}
		if recipe == nil {
			return nil, &production.RecipeNotFoundError{Symbol: recipeSymbol}
		}
		if recipe.IsExtractionRecipe() {
			return r.bindExtraction(recipe, itemSymbol, planet)
		}
		return recipe, nil
	}

	if itemSymbol == "" {
		return nil, ErrRecipeQueryEmpty
	}

	recipes, err := r.catalog.FindRecipesForItem(ctx, itemSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to find recipes for %s: %w", itemSymbol, err)
	}

	switch len(recipes) {
	case 0:
		if planet == nil {
			return nil, &production.PlanetRequiredError{ItemSymbol: itemSymbol}
		}
		return r.extract(ctx, itemSymbol, planet)
	case 1:
		if recipes[0].IsExtractionRecipe() {
			return r.bindExtraction(recipes[0], itemSymbol, planet)
		}
		return recipes[0], nil
	default:
		return nil, &production.MultipleRecipesFoundError{ItemSymbol: itemSymbol, Candidates: recipes}
	}
}

// extract builds the extraction recipe for a planet deposit of itemSymbol
func (r *RecipeResolver) extract(ctx context.Context, itemSymbol string, planet *production.Planet) (*production.Recipe, error) {
	resource, err := planet.Resource(itemSymbol)
	if err != nil {
		return nil, err
	}

	symbol, err := production.ExtractionRecipeSymbol(resource.ResourceType)
	if err != nil {
		return nil, err
	}

	base, err := r.catalog.FindRecipe(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe %s: %w", symbol, err)
	}
	if base == nil {
		return nil, &production.RecipeNotFoundError{Symbol: symbol}
	}

	return production.InstantiateExtraction(base, resource)
}

func (r *RecipeResolver) bindExtraction(base *production.Recipe, itemSymbol string, planet *production.Planet) (*production.Recipe, error) {
	if planet == nil || itemSymbol == "" {
		return nil, &production.PlanetResourceRequiredError{RecipeSymbol: base.Symbol()}
	}
	resource, err := planet.Resource(itemSymbol)
	if err != nil {
		return nil, err
	}
	return production.InstantiateExtraction(base, resource)
}
