package fio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/prun-cogm/internal/domain/market"
)

const (
	defaultBaseURL     = "https://rest.fnar.net"
	defaultTimeout     = 15 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = 500 * time.Millisecond
	defaultCacheTTL    = 5 * time.Minute
)

// Config holds the FIO client settings
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond int
	Burst             int
	CacheTTL          time.Duration
	MaxRetries        int
	BackoffBase       time.Duration
}

// Client reads exchange order books from the FIO REST API. It implements
// market.PriceRepository.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	breaker     *CircuitBreaker
	cache       *gocache.Cache
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
	sleep       func(time.Duration)
}

// NewClient creates a FIO client. Zero config fields take defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BackoffBase == 0 {
		cfg.BackoffBase = defaultBackoffBase
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:     NewCircuitBreaker(5, 30*time.Second, nil),
		cache:       gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.BackoffBase,
		sleep:       time.Sleep,
	}
}

// exchangeResponse is the body of GET /exchange/{TICKER}. FIO sends null for
// empty order book sides.
type exchangeResponse struct {
	MaterialTicker string   `json:"MaterialTicker"`
	ExchangeCode   string   `json:"ExchangeCode"`
	MMBuy          *float64 `json:"MMBuy"`
	MMSell         *float64 `json:"MMSell"`
	PriceAverage   *float64 `json:"PriceAverage"`
	AskCount       *float64 `json:"AskCount"`
	Ask            *float64 `json:"Ask"`
	Supply         *float64 `json:"Supply"`
	BidCount       *float64 `json:"BidCount"`
	Bid            *float64 `json:"Bid"`
	Demand         *float64 `json:"Demand"`
	Timestamp      string   `json:"Timestamp"`
}

// cachedMiss marks a ticker FIO does not know, so it is not asked again
type cachedMiss struct{}

// FindExchangePrice fetches the order book of itemSymbol on exchangeCode.
// Returns nil when FIO has no such ticker.
func (c *Client) FindExchangePrice(ctx context.Context, exchangeCode, itemSymbol string) (*market.ExchangePrice, error) {
	ticker := itemSymbol + "." + exchangeCode
	if cached, ok := c.cache.Get(ticker); ok {
		if price, ok := cached.(*market.ExchangePrice); ok {
			copied := *price
			return &copied, nil
		}
		return nil, nil
	}

	var response exchangeResponse
	found := false
	err := c.breaker.Call(func() error {
		var err error
		found, err = c.get(ctx, "/exchange/"+url.PathEscape(ticker), &response)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from FIO: %w", ticker, err)
	}
	if !found {
		c.cache.SetDefault(ticker, cachedMiss{})
		return nil, nil
	}

	price := response.toDomain(exchangeCode, itemSymbol)
	c.cache.SetDefault(ticker, price)

	copied := *price
	return &copied, nil
}

func (r *exchangeResponse) toDomain(exchangeCode, itemSymbol string) *market.ExchangePrice {
	if r.ExchangeCode != "" {
		exchangeCode = r.ExchangeCode
	}
	if r.MaterialTicker != "" {
		itemSymbol = r.MaterialTicker
	}
	return &market.ExchangePrice{
		ExchangeCode: exchangeCode,
		ItemSymbol:   itemSymbol,
		Timestamp:    parseTimestamp(r.Timestamp),
		MMBuy:        value(r.MMBuy),
		MMSell:       value(r.MMSell),
		AveragePrice: value(r.PriceAverage),
		AskAmount:    int(value(r.AskCount)),
		AskPrice:     value(r.Ask),
		AskAvailable: int(value(r.Supply)),
		BidAmount:    int(value(r.BidCount)),
		BidPrice:     value(r.Bid),
		BidAvailable: int(value(r.Demand)),
	}
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// FIO timestamps usually omit the zone; they are UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

// get performs a GET with rate limiting and retries. found is false when
// FIO answers 204 or 404.
func (c *Client) get(ctx context.Context, path string, result interface{}) (bool, error) {
	var lastErr error

retry:
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return false, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return false, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = &retryableError{message: fmt.Errorf("network error: %w", err).Error()}
			if !c.backoff(ctx, attempt, 0) {
				break retry
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return false, fmt.Errorf("failed to read response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
			return false, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			var retryAfter time.Duration
			if header := resp.Header.Get("Retry-After"); header != "" {
				if seconds, err := strconv.Atoi(header); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			}
			lastErr = &retryableError{message: "rate limited (429)", retryAfter: retryAfter}
			if !c.backoff(ctx, attempt, retryAfter) {
				break retry
			}
			continue

		case resp.StatusCode >= 500:
			lastErr = &retryableError{message: fmt.Sprintf("server error (%d)", resp.StatusCode)}
			if !c.backoff(ctx, attempt, 0) {
				break retry
			}
			continue

		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return false, fmt.Errorf("FIO error (status %d): %s", resp.StatusCode, string(body))
		}

		if len(body) == 0 {
			return false, nil
		}
		if err := json.Unmarshal(body, result); err != nil {
			return false, fmt.Errorf("failed to unmarshal response: %w", err)
		}
		return true, nil
	}

	if ctx.Err() != nil {
		return false, fmt.Errorf("context cancelled: %w", ctx.Err())
	}
	if lastErr != nil {
		return false, fmt.Errorf("max retries exceeded: %w", lastErr)
	}
	return false, fmt.Errorf("max retries exceeded")
}

// backoff sleeps before the next attempt. It returns false when no attempt
// is left or the context is done.
func (c *Client) backoff(ctx context.Context, attempt int, retryAfter time.Duration) bool {
	if attempt >= c.maxRetries || ctx.Err() != nil {
		return false
	}
	delay := retryAfter
	if delay == 0 {
		delay = addJitter(c.backoffBase * time.Duration(1<<attempt))
	}
	c.sleep(delay)
	return true
}

// addJitter spreads a delay by up to ±10%
func addJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	jitter := time.Duration(rand.Int63n(int64(d)/5+1)) - d/10
	return d + jitter
}

// retryableError represents an error that should trigger a retry
type retryableError struct {
	message    string
	retryAfter time.Duration
}

func (e *retryableError) Error() string {
	return e.message
}
