package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/adapters/persistence"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
	"github.com/andrescamacho/prun-cogm/test/helpers"
)

func TestCatalogRepository_SaveAndFindRecipe(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)
	ctx := context.Background()

	// Act
	err := repo.SaveRecipe(ctx, helpers.NewOVERecipe())
	require.NoError(t, err)
	found, err := repo.FindRecipe(ctx, helpers.FixtureOVERecipe)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "BMP", found.BuildingSymbol())
	assert.Equal(t, 51840000*time.Millisecond, found.Duration())
	assert.Equal(t, []production.RecipeLine{
		{ItemSymbol: "PE", Quantity: 100},
		{ItemSymbol: "PG", Quantity: 25},
	}, found.Inputs())
	assert.Equal(t, []production.RecipeLine{{ItemSymbol: "OVE", Quantity: 20}}, found.Outputs())
}

func TestCatalogRepository_SaveRecipeReplacesLines(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.SaveRecipe(ctx, helpers.NewOVERecipe()))

	updated, err := production.NewRecipe(
		helpers.FixtureOVERecipe,
		"BMP",
		10*time.Hour,
		[]production.RecipeLine{{ItemSymbol: "PG", Quantity: 50}},
		[]production.RecipeLine{{ItemSymbol: "OVE", Quantity: 10}},
	)
	require.NoError(t, err)

	// Act
	err = repo.SaveRecipe(ctx, updated)
	require.NoError(t, err)
	found, err := repo.FindRecipe(ctx, helpers.FixtureOVERecipe)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 10*time.Hour, found.Duration())
	assert.Equal(t, []production.RecipeLine{{ItemSymbol: "PG", Quantity: 50}}, found.Inputs())
	assert.Equal(t, []production.RecipeLine{{ItemSymbol: "OVE", Quantity: 10}}, found.Outputs())
}

func TestCatalogRepository_FindRecipeNotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)

	// Act
	found, err := repo.FindRecipe(context.Background(), "NOPE")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCatalogRepository_FindRecipesForItem(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)
	ctx := context.Background()

	alternative, err := production.NewRecipe(
		"BMP:50xPE=>10xOVE",
		"BMP",
		8*time.Hour,
		[]production.RecipeLine{{ItemSymbol: "PE", Quantity: 50}},
		[]production.RecipeLine{{ItemSymbol: "OVE", Quantity: 10}},
	)
	require.NoError(t, err)
	require.NoError(t, repo.SaveRecipe(ctx, helpers.NewOVERecipe()))
	require.NoError(t, repo.SaveRecipe(ctx, alternative))
	require.NoError(t, repo.SaveRecipe(ctx, helpers.NewPERecipe()))

	// Act
	recipes, err := repo.FindRecipesForItem(ctx, "OVE")

	// Assert
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "BMP:100xPE-25xPG=>20xOVE", recipes[0].Symbol())
	assert.Equal(t, "BMP:50xPE=>10xOVE", recipes[1].Symbol())
}

func TestCatalogRepository_FindRecipesForItemWithoutProducer(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)

	// Act
	recipes, err := repo.FindRecipesForItem(context.Background(), "LST")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestCatalogRepository_SaveAndFindBuilding(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)
	ctx := context.Background()

	// Act
	err := repo.SaveBuilding(ctx, helpers.NewBMPBuilding())
	require.NoError(t, err)
	found, err := repo.FindBuilding(ctx, "BMP")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, helpers.NewBMPBuilding(), found)
}

func TestCatalogRepository_FindBuildingNotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)

	// Act
	found, err := repo.FindBuilding(context.Background(), "FRM")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCatalogRepository_SaveAndFindItem(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewCatalogRepository(db)
	ctx := context.Background()
	item := &production.Item{Symbol: "OVE", Name: "basicOveralls", Category: "consumables (basic)", Weight: 0.02, Volume: 0.025}

	// Act
	err := repo.SaveItem(ctx, item)
	require.NoError(t, err)
	found, err := repo.FindItem(ctx, "OVE")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, item, found)

	missing, err := repo.FindItem(ctx, "XYZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
