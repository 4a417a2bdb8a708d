package market

import "context"

// PriceRepository supplies exchange price snapshots
type PriceRepository interface {
	// FindExchangePrice returns the latest snapshot for an item on an
	// exchange, or nil if the exchange has never listed it
	FindExchangePrice(ctx context.Context, exchangeCode, itemSymbol string) (*ExchangePrice, error)
}
