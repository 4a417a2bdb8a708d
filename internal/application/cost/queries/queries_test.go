package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/application/cost/queries"
	"github.com/andrescamacho/prun-cogm/internal/application/cost/services"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
	"github.com/andrescamacho/prun-cogm/test/helpers"
)

func newMediator(t *testing.T, fixture *helpers.CostFixture) mediator.Mediator {
	t.Helper()
	m := mediator.NewMediator()
	err := queries.RegisterHandlers(m, queries.Dependencies{
		Catalog:         fixture.Catalog,
		Planets:         fixture.Planets,
		Workforce:       fixture.Workforce,
		Prices:          fixture.Prices,
		DaysSinceRepair: services.DefaultDaysSinceRepair,
	})
	require.NoError(t, err)
	return m
}

func TestFindRecipeQuery(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())

	// Act
	response, err := m.Send(context.Background(), &queries.FindRecipeQuery{ItemSymbol: "LST", Planet: "katoa"})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.FindRecipeResponse)
	assert.Equal(t, helpers.FixturePlanetID, result.Planet.NaturalID)
	assert.True(t, result.Recipe.IsPlanetInstance())
}

func TestFindRecipeQuery_UnknownPlanet(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())

	// Act
	_, err := m.Send(context.Background(), &queries.FindRecipeQuery{ItemSymbol: "LST", Planet: "Montem"})

	// Assert
	var notFound *production.PlanetNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Montem", notFound.Identifier)
}

func TestCalculateRecipeCostQuery(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())

	// Act
	response, err := m.Send(context.Background(), &queries.CalculateRecipeCostQuery{
		ItemSymbol:   "OVE",
		Planet:       helpers.FixturePlanetID,
		ExchangeCode: helpers.FixtureExchange,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.CalculateRecipeCostResponse)
	assert.Equal(t, 11225.97, result.Cost.Total)
	assert.Zero(t, result.Recipe.Efficiency())
}

func TestCalculateRecipeCostQuery_DefaultsToMoriaExchange(t *testing.T) {
	// Arrange
	fixture := helpers.NewCostFixture()
	m := newMediator(t, fixture)

	// Act
	response, err := m.Send(context.Background(), &queries.CalculateRecipeCostQuery{
		RecipeSymbol: helpers.FixtureOVERecipe,
		Planet:       helpers.FixturePlanetID,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 11225.97, response.(*queries.CalculateRecipeCostResponse).Cost.Total)
}

func TestCalculateRecipeCostQuery_OverridesAndEfficiency(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())

	// Act
	response, err := m.Send(context.Background(), &queries.CalculateRecipeCostQuery{
		ItemSymbol:     "OVE",
		Planet:         helpers.FixturePlanetID,
		Experts:        production.Experts{production.ExpertiseManufacturing: 5},
		Program:        "Manufacturing",
		PriceOverrides: map[string]float64{"PE": 5},
	})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.CalculateRecipeCostResponse)
	assert.InDelta(t, 0.534, result.Recipe.Efficiency(), 1e-9)
	assert.Equal(t, 3500.00, result.Cost.InputCosts.Total)
	assert.Less(t, result.Cost.WorkforceCosts.Total, 120.30)
}

func TestCalculateCOGMQuery(t *testing.T) {
	tests := []struct {
		name  string
		query *queries.CalculateCOGMQuery
	}{
		{"by item", &queries.CalculateCOGMQuery{ItemSymbol: "OVE", Planet: helpers.FixturePlanetID}},
		{"by recipe with a single output", &queries.CalculateCOGMQuery{RecipeSymbol: helpers.FixtureOVERecipe, Planet: helpers.FixturePlanetName}},
		{"explicit output", &queries.CalculateCOGMQuery{RecipeSymbol: helpers.FixtureOVERecipe, OutputSymbol: "OVE", Planet: helpers.FixturePlanetID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m := newMediator(t, helpers.NewCostFixture())

			// Act
			response, err := m.Send(context.Background(), tt.query)

			// Assert
			require.NoError(t, err)
			result := response.(*queries.CalculateCOGMResponse)
			assert.Equal(t, "OVE", result.COGM.ItemSymbol)
			assert.Equal(t, 561.30, result.COGM.Total)
		})
	}
}

func TestCalculateCOGMQuery_WithoutPlanet(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())

	// Act
	response, err := m.Send(context.Background(), &queries.CalculateCOGMQuery{ItemSymbol: "OVE"})

	// Assert
	assert.Nil(t, response)
	var required *production.PlanetBuildingRequiredError
	assert.True(t, errors.As(err, &required))
}

func TestCalculateRecipeCostQuery_WithoutPlanet(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())

	// Act
	_, err := m.Send(context.Background(), &queries.CalculateRecipeCostQuery{RecipeSymbol: helpers.FixtureOVERecipe})

	// Assert
	var required *production.PlanetBuildingRequiredError
	assert.True(t, errors.As(err, &required))
}

func TestCalculateCOGMQuery_ExtractionNeedsPlanet(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())

	// Act
	_, err := m.Send(context.Background(), &queries.CalculateCOGMQuery{ItemSymbol: "LST"})

	// Assert
	var required *production.PlanetRequiredError
	assert.True(t, errors.As(err, &required))
}

func TestCalculateEmpireCOGMQuery(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())
	plan := &cost.EmpirePlan{
		Name: "textiles",
		Planets: []cost.PlanetPlan{{
			Planet: helpers.FixturePlanetID,
			Steps: []cost.ProductionStep{
				{BuildingSymbol: "BMP", ItemSymbol: "OVE"},
				{BuildingSymbol: "POL", RecipeSymbol: helpers.FixturePERecipe},
			},
		}},
	}

	// Act
	response, err := m.Send(context.Background(), &queries.CalculateEmpireCOGMQuery{Plan: plan, ExchangeCode: helpers.FixtureExchange})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.CalculateEmpireCOGMResponse).Result
	assert.Equal(t, 186.30, result.Planets[0].Outputs[0].Total)
	assert.Equal(t, map[string]float64{"PE": 5}, result.CachedPrices)
}

func TestCalculateEmpireCOGMQuery_MaterialBuyPricesOverrideMarket(t *testing.T) {
	// Arrange
	m := newMediator(t, helpers.NewCostFixture())
	plan := &cost.EmpirePlan{
		Planets: []cost.PlanetPlan{{
			Planet: helpers.FixturePlanetID,
			Steps:  []cost.ProductionStep{{BuildingSymbol: "POL", RecipeSymbol: helpers.FixturePERecipe}},
		}},
		MaterialBuyPrices: map[string]float64{"C": 20},
	}

	// Act
	response, err := m.Send(context.Background(), &queries.CalculateEmpireCOGMQuery{Plan: plan})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.CalculateEmpireCOGMResponse).Result
	assert.Equal(t, 2.00, result.Planets[0].Outputs[0].Total)
}

func TestCalculateEmpireCOGMQuery_RequiresPlan(t *testing.T) {
	m := newMediator(t, helpers.NewCostFixture())

	_, err := m.Send(context.Background(), &queries.CalculateEmpireCOGMQuery{})

	assert.EqualError(t, err, "empire plan is required")
}

func TestExpertProgressQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    *queries.ExpertProgressQuery
		current  float64
		target   float64
		next     float64
		toTarget float64
	}{
		{"from zero to full", &queries.ExpertProgressQuery{Buildings: 1}, 0, 0.2840, 10, 1271.67},
		{"shared across buildings", &queries.ExpertProgressQuery{CurrentExperts: 1, TargetExperts: 3, Buildings: 2}, 0.0306, 0.1248, 6.25, 35.035},
		{"already past the target", &queries.ExpertProgressQuery{CurrentExperts: 4, TargetExperts: 2, Buildings: 1}, 0.1974, 0.0696, 915.1, 0},
		{"full category", &queries.ExpertProgressQuery{CurrentExperts: 5, Buildings: 1}, 0.2840, 0.2840, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m := newMediator(t, helpers.NewCostFixture())

			// Act
			response, err := m.Send(context.Background(), tt.query)

			// Assert
			require.NoError(t, err)
			result := response.(*queries.ExpertProgressResponse)
			assert.Equal(t, tt.current, result.CurrentBonus)
			assert.Equal(t, tt.target, result.TargetBonus)
			assert.InDelta(t, tt.next, result.DaysToNextExpert, 1e-9)
			assert.InDelta(t, tt.toTarget, result.DaysToTarget, 1e-9)
		})
	}
}

func TestExpertProgressQuery_NegativeCounts(t *testing.T) {
	m := newMediator(t, helpers.NewCostFixture())

	_, err := m.Send(context.Background(), &queries.ExpertProgressQuery{CurrentExperts: -1})

	assert.Error(t, err)
}

func TestHandlers_RejectWrongRequestType(t *testing.T) {
	handler := queries.NewExpertProgressHandler()

	_, err := handler.Handle(context.Background(), &queries.FindRecipeQuery{})

	assert.EqualError(t, err, "invalid request type: expected *ExpertProgressQuery")
}
