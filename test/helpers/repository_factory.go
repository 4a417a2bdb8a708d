package helpers

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/prun-cogm/internal/adapters/persistence"
	"github.com/andrescamacho/prun-cogm/internal/domain/market"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// TestRepositories holds all real repository instances for integration tests
type TestRepositories struct {
	DB        *gorm.DB
	Catalog   *persistence.CatalogRepositoryGORM
	Planets   *persistence.PlanetRepositoryGORM
	Workforce *persistence.WorkforceRepositoryGORM
	Prices    *persistence.ExchangePriceRepositoryGORM
}

// NewTestRepositories creates all real repository instances using shared test DB
func NewTestRepositories() *TestRepositories {
	db := SharedTestDB

	return &TestRepositories{
		DB:        db,
		Catalog:   persistence.NewCatalogRepository(db),
		Planets:   persistence.NewPlanetRepository(db),
		Workforce: persistence.NewWorkforceRepository(db),
		Prices:    persistence.NewExchangePriceRepository(db),
	}
}

// SeedCostFixture writes the fixture catalog, planet, pioneer needs and
// market prices through the repositories.
func (r *TestRepositories) SeedCostFixture(ctx context.Context, pricedAt time.Time) error {
	for _, recipe := range FixtureRecipes() {
		if err := r.Catalog.SaveRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("failed to seed recipe %s: %w", recipe.Symbol(), err)
		}
	}
	for _, building := range FixtureBuildings() {
		if err := r.Catalog.SaveBuilding(ctx, building); err != nil {
			return fmt.Errorf("failed to seed building %s: %w", building.Symbol, err)
		}
	}
	for _, item := range FixtureItems() {
		if err := r.Catalog.SaveItem(ctx, item); err != nil {
			return fmt.Errorf("failed to seed item %s: %w", item.Symbol, err)
		}
	}
	if err := r.Planets.SavePlanet(ctx, NewFixturePlanet()); err != nil {
		return fmt.Errorf("failed to seed planet: %w", err)
	}
	if err := r.Workforce.ReplaceNeeds(ctx, production.WorkforcePioneer, PioneerNeeds()); err != nil {
		return fmt.Errorf("failed to seed workforce needs: %w", err)
	}
	for item, price := range FixtureMarketPrices {
		if err := r.SetAskPrice(ctx, item, price, pricedAt); err != nil {
			return err
		}
	}
	return nil
}

// SetAskPrice records a fixture-exchange snapshot quoting only an ask price
func (r *TestRepositories) SetAskPrice(ctx context.Context, itemSymbol string, price float64, at time.Time) error {
	err := r.Prices.RecordExchangePrice(ctx, &market.ExchangePrice{
		ExchangeCode: FixtureExchange,
		ItemSymbol:   itemSymbol,
		Timestamp:    at,
		AskPrice:     price,
	})
	if err != nil {
		return fmt.Errorf("failed to seed price of %s: %w", itemSymbol, err)
	}
	return nil
}
