package production

import "context"

// CatalogRepository reads catalog reference data
type CatalogRepository interface {
	// FindRecipe returns the recipe with the given symbol, or nil if absent
	FindRecipe(ctx context.Context, symbol string) (*Recipe, error)

	// FindRecipesForItem returns every recipe listing itemSymbol as an output
	FindRecipesForItem(ctx context.Context, itemSymbol string) ([]*Recipe, error)

	// FindBuilding returns the building with the given symbol, or nil if absent
	FindBuilding(ctx context.Context, symbol string) (*Building, error)

	// FindItem returns the item with the given symbol, or nil if absent
	FindItem(ctx context.Context, symbol string) (*Item, error)
}

// PlanetRepository reads planets with their resources
type PlanetRepository interface {
	// FindPlanet looks a planet up by natural id or name, returning nil if absent
	FindPlanet(ctx context.Context, identifier string) (*Planet, error)
}

// WorkforceRepository reads workforce consumable needs
type WorkforceRepository interface {
	// FindNeeds returns the consumables of one workforce tier
	FindNeeds(ctx context.Context, workforceType WorkforceType) ([]WorkforceNeed, error)
}
