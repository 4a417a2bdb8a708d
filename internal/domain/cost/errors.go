package cost

import "fmt"

// MissingPriceError is returned when no override, cached price or market
// quote exists for an item.
type MissingPriceError struct {
	ItemSymbol string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("no price available for %s", e.ItemSymbol)
}
