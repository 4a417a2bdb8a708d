package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and printed after each command
	Enabled bool `mapstructure:"enabled"`
}
