package cost

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/prun-cogm/internal/domain/market"
)

// MarketQuoter returns the live buy price of an item. ok is false when the
// market has no usable quote.
type MarketQuoter interface {
	QuoteBuyPrice(ctx context.Context, itemSymbol string) (price float64, ok bool, err error)
}

// PriceBook resolves buy prices for one evaluation: manual overrides first,
// then computed COGM prices recorded during the evaluation, then the market.
type PriceBook struct {
	mu        sync.RWMutex
	market    MarketQuoter
	overrides map[string]float64
	cache     map[string]float64
}

// NewPriceBook creates a price book over a market quoter. market may be nil
// when every price comes from overrides.
func NewPriceBook(market MarketQuoter, overrides map[string]float64) *PriceBook {
	copied := make(map[string]float64, len(overrides))
	for item, price := range overrides {
		copied[item] = price
	}
	return &PriceBook{
		market:    market,
		overrides: copied,
		cache:     make(map[string]float64),
	}
}

// BuyPrice returns the unit price used to cost an input
func (b *PriceBook) BuyPrice(ctx context.Context, itemSymbol string) (float64, error) {
	if price, ok := b.overrides[itemSymbol]; ok {
		return price, nil
	}

	b.mu.RLock()
	cached, ok := b.cache[itemSymbol]
	b.mu.RUnlock()
	if ok {
		return cached, nil
	}

	price, ok, err := b.quote(ctx, itemSymbol)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &MissingPriceError{ItemSymbol: itemSymbol}
	}
	return price, nil
}

// RecordCOGMPrice offers a computed per-unit cost for an item. It is kept
// only when it does not exceed the market buy price and beats any cached
// value. Without a market quote the first computed cost is kept.
func (b *PriceBook) RecordCOGMPrice(ctx context.Context, itemSymbol string, price float64) (bool, error) {
	marketPrice, hasMarket, err := b.quote(ctx, itemSymbol)
	if err != nil {
		return false, err
	}
	if hasMarket && price > marketPrice {
		return false, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if cached, ok := b.cache[itemSymbol]; ok && price >= cached {
		return false, nil
	}
	b.cache[itemSymbol] = price
	return true, nil
}

// CachedPrice returns the recorded COGM price for an item
func (b *PriceBook) CachedPrice(itemSymbol string) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	price, ok := b.cache[itemSymbol]
	return price, ok
}

// CachedPrices returns a snapshot of every recorded COGM price
func (b *PriceBook) CachedPrices() map[string]float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	snapshot := make(map[string]float64, len(b.cache))
	for item, price := range b.cache {
		snapshot[item] = price
	}
	return snapshot
}

func (b *PriceBook) quote(ctx context.Context, itemSymbol string) (float64, bool, error) {
	if b.market == nil {
		return 0, false, nil
	}
	price, ok, err := b.market.QuoteBuyPrice(ctx, itemSymbol)
	if err != nil {
		return 0, false, fmt.Errorf("failed to quote %s: %w", itemSymbol, err)
	}
	return price, ok, nil
}

// ExchangeQuoter quotes buy prices from one exchange
type ExchangeQuoter struct {
	prices       market.PriceRepository
	exchangeCode string
}

// NewExchangeQuoter creates a quoter bound to an exchange
func NewExchangeQuoter(prices market.PriceRepository, exchangeCode string) *ExchangeQuoter {
	return &ExchangeQuoter{prices: prices, exchangeCode: exchangeCode}
}

// QuoteBuyPrice implements MarketQuoter
func (q *ExchangeQuoter) QuoteBuyPrice(ctx context.Context, itemSymbol string) (float64, bool, error) {
	snapshot, err := q.prices.FindExchangePrice(ctx, q.exchangeCode, itemSymbol)
	if err != nil {
		return 0, false, err
	}
	if snapshot == nil {
		return 0, false, nil
	}
	price, ok := snapshot.BuyPrice()
	return price, ok, nil
}
