package market

import "errors"

// Domain errors for exchange price data

var (
	// ErrInvalidExchangeCode is returned when an exchange code is empty
	ErrInvalidExchangeCode = errors.New("invalid exchange code")

	// ErrInvalidItemSymbol is returned when an item symbol is empty
	ErrInvalidItemSymbol = errors.New("invalid item symbol")

	// ErrInvalidPrice is returned when a price is negative
	ErrInvalidPrice = errors.New("invalid price")

	// ErrNoBuyPrice is returned when a quote has no usable buy price
	ErrNoBuyPrice = errors.New("no buy price available")
)
