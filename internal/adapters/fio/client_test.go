package fio_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/adapters/fio"
)

const riceResponse = `{
	"MaterialTicker": "RAT",
	"ExchangeCode": "NC1",
	"MMBuy": null,
	"MMSell": null,
	"PriceAverage": 24.5,
	"AskCount": 5000,
	"Ask": 25.0,
	"Supply": 120000,
	"BidCount": 300,
	"Bid": 23.0,
	"Demand": 8000,
	"Timestamp": "2026-03-01T10:15:30.123"
}`

func newTestClient(url string) *fio.Client {
	return fio.NewClient(fio.Config{
		BaseURL:           url,
		Timeout:           time.Second,
		RequestsPerSecond: 100,
		Burst:             100,
		CacheTTL:          time.Minute,
		MaxRetries:        2,
		BackoffBase:       time.Millisecond,
	})
}

func TestClient_FindExchangePrice_DecodesOrderBook(t *testing.T) {
	// Arrange
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(riceResponse))
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	// Act
	price, err := client.FindExchangePrice(context.Background(), "NC1", "RAT")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, "/exchange/RAT.NC1", path)
	assert.Equal(t, "RAT", price.ItemSymbol)
	assert.Equal(t, "NC1", price.ExchangeCode)
	assert.Equal(t, 25.0, price.AskPrice)
	assert.Equal(t, 120000, price.AskAvailable)
	assert.Equal(t, 0.0, price.MMBuy)
	assert.Equal(t, 2026, price.Timestamp.Year())

	buy, ok := price.BuyPrice()
	assert.True(t, ok)
	assert.Equal(t, 25.0, buy)
}

func TestClient_FindExchangePrice_CachesQuotes(t *testing.T) {
	// Arrange
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(riceResponse))
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	// Act
	_, err1 := client.FindExchangePrice(context.Background(), "NC1", "RAT")
	_, err2 := client.FindExchangePrice(context.Background(), "NC1", "RAT")

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_FindExchangePrice_UnknownTickerReturnsNil(t *testing.T) {
	// Arrange
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	// Act
	price, err := client.FindExchangePrice(context.Background(), "NC1", "XYZ")
	again, errAgain := client.FindExchangePrice(context.Background(), "NC1", "XYZ")

	// Assert
	require.NoError(t, err)
	require.NoError(t, errAgain)
	assert.Nil(t, price)
	assert.Nil(t, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_FindExchangePrice_RetriesServerErrors(t *testing.T) {
	// Arrange
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(riceResponse))
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	// Act
	price, err := client.FindExchangePrice(context.Background(), "NC1", "RAT")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_FindExchangePrice_GivesUpAfterMaxRetries(t *testing.T) {
	// Arrange
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	// Act
	price, err := client.FindExchangePrice(context.Background(), "NC1", "RAT")

	// Assert
	require.Error(t, err)
	assert.Nil(t, price)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_FindExchangePrice_ClientErrorIsNotRetried(t *testing.T) {
	// Arrange
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad ticker"))
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	// Act
	_, err := client.FindExchangePrice(context.Background(), "NC1", "RAT")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	breaker := fio.NewCircuitBreaker(2, time.Minute, func() time.Time { return now })
	failing := func() error { return errors.New("boom") }

	// Act
	_ = breaker.Call(failing)
	_ = breaker.Call(failing)
	err := breaker.Call(func() error { return nil })

	// Assert
	assert.ErrorIs(t, err, fio.ErrCircuitOpen)
	assert.Equal(t, fio.CircuitOpen, breaker.State())
}

func TestCircuitBreaker_ClosesAfterSuccessfulProbe(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	breaker := fio.NewCircuitBreaker(1, time.Minute, func() time.Time { return now })
	_ = breaker.Call(func() error { return errors.New("boom") })
	now = now.Add(2 * time.Minute)

	// Act
	err := breaker.Call(func() error { return nil })

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fio.CircuitClosed, breaker.State())
}
