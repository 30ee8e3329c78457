package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultBaseURL  = "https://api.printify.com/v1"
	defaultLogoPath = "fc_cabo_verde_logo.png"
	defaultTimeout  = 30000 // milliseconds
)

// Load builds the configuration from, in order of increasing precedence:
// built-in defaults, an optional configs/config.yaml, and environment
// variables (a .env file is honored when present). The returned Config
// has passed Validate.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// Lets PRINTIFY_API_KEY override printify.api_key and so on.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; environment variables carry everything.
	}

	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads a .env file from the working directory or any parent
// up to the module root. Missing files are not an error.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideFromEnv fills fields that are still empty (or carry an
// unresolved ${VAR} placeholder) after the yaml/viper pass. AutomaticEnv
// only kicks in for keys viper has already seen, so a run with no config
// file at all still picks the credentials up here.
func overrideFromEnv(cfg *Config) {
	if unset(cfg.Printify.APIKey) {
		cfg.Printify.APIKey = os.Getenv("PRINTIFY_API_KEY")
	}
	if unset(cfg.Printify.StoreID) {
		cfg.Printify.StoreID = os.Getenv("PRINTIFY_STORE_ID")
	}
	if val := os.Getenv("LOGO_PATH"); val != "" {
		cfg.Asset.LogoPath = val
	}
}

func unset(val string) bool {
	return val == "" || strings.Contains(val, "${")
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "catalog-publisher"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.Printify.BaseURL == "" {
		cfg.Printify.BaseURL = defaultBaseURL
	}
	if cfg.Printify.Timeout == 0 {
		cfg.Printify.Timeout = defaultTimeout
	}

	if cfg.Asset.LogoPath == "" {
		cfg.Asset.LogoPath = defaultLogoPath
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
