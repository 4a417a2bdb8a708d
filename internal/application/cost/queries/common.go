package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/prun-cogm/internal/adapters/metrics"
	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
	"github.com/andrescamacho/prun-cogm/internal/domain/market"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// resolvePlanet looks up an optional planet. An empty identifier yields nil.
func resolvePlanet(ctx context.Context, planets production.PlanetRepository, identifier string) (*production.Planet, error) {
	if identifier == "" {
		return nil, nil
	}
	planet, err := planets.FindPlanet(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to find planet %s: %w", identifier, err)
	}
	if planet == nil {
		return nil, &production.PlanetNotFoundError{Identifier: identifier}
	}
	return planet, nil
}

// newPriceBook creates the price book scoped to one request
func newPriceBook(prices market.PriceRepository, exchangeCode string, overrides map[string]float64) *cost.PriceBook {
	if exchangeCode == "" {
		exchangeCode = market.DefaultExchange
	}
	var quoter cost.MarketQuoter
	if prices != nil {
		quoter = cost.NewExchangeQuoter(prices, exchangeCode)
	}
	return cost.NewPriceBook(quoter, overrides)
}

// observe records the outcome of one engine operation
func observe(operation string, start time.Time, err error) {
	metrics.RecordCalculation(operation, time.Since(start).Seconds(), err == nil)
}
