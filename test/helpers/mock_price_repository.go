package helpers

import (
	"context"
	"sync"
	"time"

	"github.com/andrescamacho/prun-cogm/internal/domain/market"
)

// MockPriceRepository is an in-memory exchange price store for tests
type MockPriceRepository struct {
	mu     sync.RWMutex
	prices map[string]*market.ExchangePrice
	calls  int

	// FindErr, when set, is returned by every lookup
	FindErr error
}

// NewMockPriceRepository creates an empty price store
func NewMockPriceRepository() *MockPriceRepository {
	return &MockPriceRepository{prices: make(map[string]*market.ExchangePrice)}
}

// SetAskPrice stores a snapshot whose only usable price is the ask
func (m *MockPriceRepository) SetAskPrice(exchangeCode, itemSymbol string, price float64) {
	m.SetPrice(&market.ExchangePrice{
		ExchangeCode: exchangeCode,
		ItemSymbol:   itemSymbol,
		Timestamp:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		AskPrice:     price,
		AskAvailable: 1000,
	})
}

// SetPrice stores a full snapshot
func (m *MockPriceRepository) SetPrice(price *market.ExchangePrice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[price.Ticker()] = price
}

// Calls returns how many lookups were made
func (m *MockPriceRepository) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func (m *MockPriceRepository) FindExchangePrice(ctx context.Context, exchangeCode, itemSymbol string) (*market.ExchangePrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.prices[itemSymbol+"."+exchangeCode], nil
}
