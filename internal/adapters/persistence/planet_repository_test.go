package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/adapters/persistence"
	"github.com/andrescamacho/prun-cogm/test/helpers"
)

func TestPlanetRepository_SaveAndFindByNaturalID(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewPlanetRepository(db)
	ctx := context.Background()

	// Act
	err := repo.SavePlanet(ctx, helpers.NewFixturePlanet())
	require.NoError(t, err)
	found, err := repo.FindPlanet(ctx, "uv-351A")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, helpers.FixturePlanetID, found.NaturalID)
	assert.Equal(t, helpers.FixturePlanetName, found.Name)
	assert.True(t, found.Surface)
	assert.Equal(t, -1.0, found.Fertility)
	require.Len(t, found.Resources, 3)
	assert.Equal(t, "H2O", found.Resources[0].ItemSymbol)
	assert.Equal(t, "LST", found.Resources[1].ItemSymbol)
	assert.Equal(t, "NE", found.Resources[2].ItemSymbol)
	assert.Equal(t, 0.5, found.Resources[0].Factor)
}

func TestPlanetRepository_FindByName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewPlanetRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.SavePlanet(ctx, helpers.NewFixturePlanet()))

	// Act
	found, err := repo.FindPlanet(ctx, "KATOA")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, helpers.FixturePlanetID, found.NaturalID)
}

func TestPlanetRepository_SaveReplacesResources(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewPlanetRepository(db)
	ctx := context.Background()
	planet := helpers.NewFixturePlanet()
	require.NoError(t, repo.SavePlanet(ctx, planet))
	planet.Resources = planet.Resources[:1]

	// Act
	err := repo.SavePlanet(ctx, planet)
	require.NoError(t, err)
	found, err := repo.FindPlanet(ctx, helpers.FixturePlanetID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Resources, 1)
	assert.Equal(t, "LST", found.Resources[0].ItemSymbol)
}

func TestPlanetRepository_FindPlanetNotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewPlanetRepository(db)

	// Act
	found, err := repo.FindPlanet(context.Background(), "Montem")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, found)
}
