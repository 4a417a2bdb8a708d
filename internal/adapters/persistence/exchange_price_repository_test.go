package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/adapters/persistence"
	"github.com/andrescamacho/prun-cogm/internal/domain/market"
	"github.com/andrescamacho/prun-cogm/test/helpers"
)

func TestExchangePriceRepository_FindReturnsNewestSnapshot(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewExchangePriceRepository(db)
	ctx := context.Background()
	older := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	require.NoError(t, repo.RecordExchangePrice(ctx, &market.ExchangePrice{
		ExchangeCode: market.ExchangeMoria1, ItemSymbol: "RAT", Timestamp: newer, AskPrice: 27, AskAvailable: 500,
	}))
	require.NoError(t, repo.RecordExchangePrice(ctx, &market.ExchangePrice{
		ExchangeCode: market.ExchangeMoria1, ItemSymbol: "RAT", Timestamp: older, AskPrice: 25,
	}))

	// Act
	found, err := repo.FindExchangePrice(ctx, market.ExchangeMoria1, "RAT")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 27.0, found.AskPrice)
	assert.Equal(t, 500, found.AskAvailable)
	assert.True(t, found.Timestamp.Equal(newer))
}

func TestExchangePriceRepository_FindIsScopedToExchange(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewExchangePriceRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.RecordExchangePrice(ctx, &market.ExchangePrice{
		ExchangeCode: market.ExchangeMoria1, ItemSymbol: "DW", Timestamp: time.Now().UTC(), AskPrice: 15,
	}))

	// Act
	found, err := repo.FindExchangePrice(ctx, "CI1", "DW")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestExchangePriceRepository_RecordRejectsInvalidSnapshot(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewExchangePriceRepository(db)
	ctx := context.Background()

	// Act
	err := repo.RecordExchangePrice(ctx, &market.ExchangePrice{
		ExchangeCode: market.ExchangeMoria1, ItemSymbol: "DW", AskPrice: -1,
	})

	// Assert
	assert.ErrorIs(t, err, market.ErrInvalidPrice)
	found, findErr := repo.FindExchangePrice(ctx, market.ExchangeMoria1, "DW")
	require.NoError(t, findErr)
	assert.Nil(t, found)
}
