package config

import "time"

// Price sources
const (
	PriceSourceDatabase = "database"
	PriceSourceFIO      = "fio"
)

// PricingConfig selects where market prices come from and how buildings are costed
type PricingConfig struct {
	// Exchange code used for market quotes
	Exchange string `mapstructure:"exchange" validate:"required,exchange"`

	// Days since the last building repair, used for the repair cost share
	DaysSinceRepair *int `mapstructure:"days_since_repair" validate:"required,min=0,max=180"`

	// Price source: database or fio
	Source string `mapstructure:"source" validate:"required,oneof=database fio"`
}

// FIOConfig holds the FIO REST client configuration
type FIOConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Request timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// How long a fetched quote is reused
	CacheTTL time.Duration `mapstructure:"cache_ttl" validate:"required"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
