package production

import "strings"

// Item is immutable catalog reference data
type Item struct {
	Symbol   string
	Name     string
	Category string
	Weight   float64
	Volume   float64
}

// NewItem creates an item, rejecting an empty symbol
func NewItem(symbol, name, category string, weight, volume float64) (*Item, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, ErrEmptySymbol
	}
	return &Item{
		Symbol:   symbol,
		Name:     name,
		Category: category,
		Weight:   weight,
		Volume:   volume,
	}, nil
}
