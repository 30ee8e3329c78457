package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_Error(t *testing.T) {
	err := &StandardError{
		Code:    ErrCodeUploadFailed,
		Message: "Artwork upload failed",
	}

	assert.Equal(t, "StandardError[UPLOAD_FAILED]: Artwork upload failed", err.Error())
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{
			name:      "config missing",
			err:       NewConfigMissingError("PRINTIFY_API_KEY not set"),
			code:      ErrCodeConfigMissing,
			retryable: false,
		},
		{
			name:      "upload failed",
			err:       NewUploadFailedError(fmt.Errorf("connection refused")),
			code:      ErrCodeUploadFailed,
			retryable: true,
		},
		{
			name:      "catalog fetch failed",
			err:       NewCatalogFetchFailedError("variants", fmt.Errorf("timeout")),
			code:      ErrCodeCatalogFetchFailed,
			retryable: true,
		},
		{
			name:      "product create failed",
			err:       NewProductCreateFailedError(fmt.Errorf("status 422")),
			code:      ErrCodeProductCreateFailed,
			retryable: true,
		},
		{
			name:      "product publish failed",
			err:       NewProductPublishFailedError("prod-1", fmt.Errorf("status 500")),
			code:      ErrCodeProductPublishFailed,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestCatalogFetchFailedError_CarriesStage(t *testing.T) {
	err := NewCatalogFetchFailedError("print_providers", fmt.Errorf("boom"))

	assert.Contains(t, err.Details, "stage: print_providers")
	assert.Contains(t, err.Details, "boom")
}

func TestVendorAPIError_RetryableByStatus(t *testing.T) {
	assert.False(t, NewVendorAPIError("/catalog/blueprints.json", 422, "bad payload").Retryable)
	assert.True(t, NewVendorAPIError("/catalog/blueprints.json", 503, "unavailable").Retryable)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "UPLOAD_FAILED", CodeOf(NewUploadFailedError(fmt.Errorf("x"))))
	assert.Equal(t, "UNKNOWN_ERROR", CodeOf(fmt.Errorf("plain error")))
}
