package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/prun-cogm/internal/domain/market"
)

// ExchangePriceRepositoryGORM implements exchange price persistence using GORM
type ExchangePriceRepositoryGORM struct {
	db *gorm.DB
}

// NewExchangePriceRepository creates a new GORM-based exchange price repository
func NewExchangePriceRepository(db *gorm.DB) *ExchangePriceRepositoryGORM {
	return &ExchangePriceRepositoryGORM{db: db}
}

// FindExchangePrice retrieves the newest snapshot for an item on an exchange.
// Returns nil if there is none.
func (r *ExchangePriceRepositoryGORM) FindExchangePrice(
	ctx context.Context,
	exchangeCode string,
	itemSymbol string,
) (*market.ExchangePrice, error) {
	var model ExchangePriceModel
	err := r.db.WithContext(ctx).
		Where("exchange_code = ? AND item_symbol = ?", exchangeCode, itemSymbol).
		Order("timestamp DESC, id DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find exchange price: %w", err)
	}

	return &market.ExchangePrice{
		ExchangeCode: model.ExchangeCode,
		ItemSymbol:   model.ItemSymbol,
		Timestamp:    model.Timestamp,
		MMBuy:        model.MMBuy,
		MMSell:       model.MMSell,
		AveragePrice: model.AveragePrice,
		AskAmount:    model.AskAmount,
		AskPrice:     model.AskPrice,
		AskAvailable: model.AskAvailable,
		BidAmount:    model.BidAmount,
		BidPrice:     model.BidPrice,
		BidAvailable: model.BidAvailable,
	}, nil
}

// RecordExchangePrice appends a price snapshot
func (r *ExchangePriceRepositoryGORM) RecordExchangePrice(ctx context.Context, price *market.ExchangePrice) error {
	if err := price.Validate(); err != nil {
		return err
	}

	model := ExchangePriceModel{
		ExchangeCode: price.ExchangeCode,
		ItemSymbol:   price.ItemSymbol,
		Timestamp:    price.Timestamp,
		MMBuy:        price.MMBuy,
		MMSell:       price.MMSell,
		AveragePrice: price.AveragePrice,
		AskAmount:    price.AskAmount,
		AskPrice:     price.AskPrice,
		AskAvailable: price.AskAvailable,
		BidAmount:    price.BidAmount,
		BidPrice:     price.BidPrice,
		BidAvailable: price.BidAvailable,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to record exchange price: %w", err)
	}
	return nil
}
