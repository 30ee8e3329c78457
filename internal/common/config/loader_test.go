package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PRINTIFY_API_KEY", "test-api-key")
	t.Setenv("PRINTIFY_STORE_ID", "store-42")
	t.Setenv("LOGO_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-api-key", cfg.Printify.APIKey)
	assert.Equal(t, "store-42", cfg.Printify.StoreID)
	assert.Equal(t, "https://api.printify.com/v1", cfg.Printify.BaseURL)
	assert.Equal(t, 30000, cfg.Printify.Timeout)
	assert.Equal(t, "fc_cabo_verde_logo.png", cfg.Asset.LogoPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_LogoPathOverride(t *testing.T) {
	t.Setenv("PRINTIFY_API_KEY", "test-api-key")
	t.Setenv("PRINTIFY_STORE_ID", "store-42")
	t.Setenv("LOGO_PATH", "designs/africa.png")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "designs/africa.png", cfg.Asset.LogoPath)
}

func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		storeID string
		errMsg  string
	}{
		{
			name:    "missing api key",
			apiKey:  "",
			storeID: "store-42",
			errMsg:  "printify.api_key is required",
		},
		{
			name:    "missing store id",
			apiKey:  "test-api-key",
			storeID: "",
			errMsg:  "printify.store_id is required",
		},
		{
			name:    "missing both",
			apiKey:  "",
			storeID: "",
			errMsg:  "printify.api_key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PRINTIFY_API_KEY", tt.apiKey)
			t.Setenv("PRINTIFY_STORE_ID", tt.storeID)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid credential pair",
			config: Config{
				Printify: PrintifyConfig{APIKey: "key", StoreID: "store"},
			},
			wantErr: false,
		},
		{
			name: "no api key",
			config: Config{
				Printify: PrintifyConfig{StoreID: "store"},
			},
			wantErr: true,
		},
		{
			name: "no store id",
			config: Config{
				Printify: PrintifyConfig{APIKey: "key"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUnset(t *testing.T) {
	assert.True(t, unset(""))
	assert.True(t, unset("${PRINTIFY_API_KEY}"))
	assert.False(t, unset("real-value"))
}

func TestPrintifyConfig_RequestTimeout(t *testing.T) {
	cfg := PrintifyConfig{Timeout: 30000}
	assert.Equal(t, "30s", cfg.RequestTimeout().String())
}
