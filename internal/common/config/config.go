package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct. It is constructed
// once at process entry and handed to the workflow; nothing reads
// configuration from package-level state.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Printify PrintifyConfig `mapstructure:"printify"`
	Asset    AssetConfig    `mapstructure:"asset"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// PrintifyConfig holds the vendor API credentials and connection settings.
type PrintifyConfig struct {
	APIKey  string `mapstructure:"api_key"`
	StoreID string `mapstructure:"store_id"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// AssetConfig points at the artwork file uploaded at the start of a run.
type AssetConfig struct {
	LogoPath string `mapstructure:"logo_path"`
}

// MetricsConfig controls the optional Prometheus endpoint. An empty
// address disables it.
type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the fields without which no run can start. Only the
// two credentials are hard requirements; everything else has a default.
func (c *Config) Validate() error {
	if c.Printify.APIKey == "" {
		return fmt.Errorf("printify.api_key is required (set PRINTIFY_API_KEY)")
	}
	if c.Printify.StoreID == "" {
		return fmt.Errorf("printify.store_id is required (set PRINTIFY_STORE_ID)")
	}
	return nil
}

// RequestTimeout converts the configured millisecond timeout to a Duration.
func (p PrintifyConfig) RequestTimeout() time.Duration {
	return time.Duration(p.Timeout) * time.Millisecond
}
