package production_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

func newTemplate(t *testing.T, building string, duration time.Duration) *production.Recipe {
	t.Helper()
	recipe, err := production.NewRecipe(building+":=>", building, duration, nil, nil)
	require.NoError(t, err)
	return recipe
}

func TestDailyExtraction(t *testing.T) {
	assert.Equal(t, 70.0, production.DailyExtraction(production.BuildingExtractor, 1.0))
	assert.Equal(t, 35.0, production.DailyExtraction(production.BuildingRig, 0.5))
	assert.Equal(t, 30.0, production.DailyExtraction(production.BuildingCollector, 0.5))
	assert.Equal(t, 8.6, production.DailyExtraction(production.BuildingRig, 0.123))
	assert.Zero(t, production.DailyExtraction(production.BuildingExtractor, 0))
}

func TestExtractionRecipeSymbol(t *testing.T) {
	tests := []struct {
		resourceType production.ResourceType
		expected     string
	}{
		{production.ResourceSolid, "EXT:=>"},
		{production.ResourceLiquid, "RIG:=>"},
		{production.ResourceGaseous, "COL:=>"},
	}

	for _, tt := range tests {
		t.Run(string(tt.resourceType), func(t *testing.T) {
			symbol, err := production.ExtractionRecipeSymbol(tt.resourceType)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, symbol)
		})
	}

	_, err := production.ExtractionRecipeSymbol("PLASMA")
	var unknown *production.UnknownResourceTypeError
	assert.True(t, errors.As(err, &unknown))
}

func TestInstantiateExtraction_RoundsUnitsUpAndStretchesDuration(t *testing.T) {
	// Arrange
	template := newTemplate(t, production.BuildingExtractor, time.Hour)
	resource := &production.PlanetResource{
		PlanetNaturalID: "UV-351a",
		ItemSymbol:      "LST",
		ResourceType:    production.ResourceSolid,
		Factor:          1.0,
	}

	// Act
	recipe, err := production.InstantiateExtraction(template, resource)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []production.RecipeLine{{ItemSymbol: "LST", Quantity: 3}}, recipe.Outputs())
	assert.Empty(t, recipe.Inputs())
	assert.InDelta(t, 1.0285714, recipe.DurationHours(), 1e-6)
	assert.Equal(t, int64(3702857), recipe.DurationMilliseconds())
	assert.Equal(t, "EXT:=>", recipe.Symbol())
	assert.True(t, recipe.IsPlanetInstance())
	assert.Equal(t, production.RecipeKindExtraction, recipe.Kind())
	require.NotNil(t, recipe.Resource())
	assert.Equal(t, "LST", recipe.Resource().ItemSymbol)
	assert.False(t, template.IsPlanetInstance(), "template is left untouched")
}

func TestInstantiateExtraction_Rig(t *testing.T) {
	// Arrange
	template := newTemplate(t, production.BuildingRig, 4*time.Hour)
	resource := &production.PlanetResource{ItemSymbol: "H2O", ResourceType: production.ResourceLiquid, Factor: 0.5}

	// Act
	recipe, err := production.InstantiateExtraction(template, resource)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6.0, recipe.Outputs()[0].Quantity)
	assert.InDelta(t, 4.1142857, recipe.DurationHours(), 1e-6)
	assert.Equal(t, int64(14811428), recipe.DurationMilliseconds(), "partial millisecond is dropped")
}

func TestInstantiateExtraction_ZeroFactor(t *testing.T) {
	// Arrange
	template := newTemplate(t, production.BuildingCollector, 6*time.Hour)
	resource := &production.PlanetResource{PlanetNaturalID: "UV-351a", ItemSymbol: "NE", ResourceType: production.ResourceGaseous}

	// Act
	_, err := production.InstantiateExtraction(template, resource)

	// Assert
	var zero *production.ZeroExtractionRateError
	require.True(t, errors.As(err, &zero))
	assert.Equal(t, "NE", zero.ItemSymbol)
	assert.Equal(t, "UV-351a", zero.Planet)
}

func TestInstantiateExtraction_RejectsStandardRecipe(t *testing.T) {
	// Arrange
	recipe := newOVERecipe(t)
	resource := &production.PlanetResource{ItemSymbol: "LST", ResourceType: production.ResourceSolid, Factor: 1}

	// Act
	_, err := production.InstantiateExtraction(recipe, resource)

	// Assert
	var notExtraction *production.NotExtractionRecipeError
	assert.True(t, errors.As(err, &notExtraction))
}
