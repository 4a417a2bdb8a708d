package config

import "time"

// DefaultDaysSinceRepair assumes buildings are at the end of their repair window
const DefaultDaysSinceRepair = 180

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = DatabaseTypeSQLite
	}
	if cfg.Database.Type == DatabaseTypeSQLite && cfg.Database.Path == "" {
		cfg.Database.Path = "prun.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "prun"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "prun"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Pricing defaults
	if cfg.Pricing.Exchange == "" {
		cfg.Pricing.Exchange = "NC1"
	}
	if cfg.Pricing.DaysSinceRepair == nil {
		days := DefaultDaysSinceRepair
		cfg.Pricing.DaysSinceRepair = &days
	}
	if cfg.Pricing.Source == "" {
		cfg.Pricing.Source = PriceSourceDatabase
	}

	// FIO defaults
	if cfg.FIO.BaseURL == "" {
		cfg.FIO.BaseURL = "https://rest.fnar.net"
	}
	if cfg.FIO.Timeout == 0 {
		cfg.FIO.Timeout = 15 * time.Second
	}
	if cfg.FIO.RateLimit.Requests == 0 {
		cfg.FIO.RateLimit.Requests = 5
	}
	if cfg.FIO.RateLimit.Burst == 0 {
		cfg.FIO.RateLimit.Burst = 10
	}
	if cfg.FIO.CacheTTL == 0 {
		cfg.FIO.CacheTTL = 5 * time.Minute
	}
}
