package market

import (
	"fmt"
	"strings"
	"time"
)

// Commodity exchange codes
const (
	ExchangeAntares1  = "AI1"
	ExchangeCastillo1 = "CI1"
	ExchangeCastillo2 = "CI2"
	ExchangeInsitor1  = "IC1"
	ExchangeMoria1    = "NC1"
	ExchangeMoria2    = "NC2"
	DefaultExchange   = ExchangeMoria1
)

// Exchanges lists every commodity exchange
var Exchanges = []string{
	ExchangeAntares1,
	ExchangeCastillo1,
	ExchangeCastillo2,
	ExchangeInsitor1,
	ExchangeMoria1,
	ExchangeMoria2,
}

// ExchangePrice is a snapshot of one item's order book on one exchange.
// Zero prices mean the side is empty.
type ExchangePrice struct {
	ExchangeCode string
	ItemSymbol   string
	Timestamp    time.Time

	MMBuy        float64
	MMSell       float64
	AveragePrice float64

	AskAmount    int
	AskPrice     float64
	AskAvailable int

	BidAmount    int
	BidPrice     float64
	BidAvailable int
}

// Validate checks the identifying fields and rejects negative prices
func (p *ExchangePrice) Validate() error {
	if strings.TrimSpace(p.ExchangeCode) == "" {
		return ErrInvalidExchangeCode
	}
	if strings.TrimSpace(p.ItemSymbol) == "" {
		return ErrInvalidItemSymbol
	}
	for _, price := range []float64{p.MMBuy, p.MMSell, p.AveragePrice, p.AskPrice, p.BidPrice} {
		if price < 0 {
			return fmt.Errorf("%w: %s %v", ErrInvalidPrice, p.Ticker(), price)
		}
	}
	return nil
}

// Ticker returns the exchange ticker, e.g. RAT.NC1
func (p *ExchangePrice) Ticker() string {
	return p.ItemSymbol + "." + p.ExchangeCode
}

// BuyPrice returns the price paid to buy one unit now: the ask, then the
// market maker buy price, then the average, then the bid.
func (p *ExchangePrice) BuyPrice() (float64, bool) {
	for _, candidate := range []float64{p.AskPrice, p.MMBuy, p.AveragePrice, p.BidPrice} {
		if candidate > 0 {
			return candidate, true
		}
	}
	return 0, false
}

// IsValidExchange reports whether code is a known exchange
func IsValidExchange(code string) bool {
	for _, e := range Exchanges {
		if e == code {
			return true
		}
	}
	return false
}
