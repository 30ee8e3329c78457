// Package errors provides standardized error handling for the catalog
// publishing workflow.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Fatal for the whole run.
	ErrCodeConfigMissing ErrorCode = "CONFIG_MISSING"
	ErrCodeUploadFailed  ErrorCode = "UPLOAD_FAILED"

	// Per-blueprint, recoverable: the run continues with the next blueprint.
	ErrCodeCatalogFetchFailed   ErrorCode = "CATALOG_FETCH_FAILED"
	ErrCodeNoPrintProviders     ErrorCode = "NO_PRINT_PROVIDERS"
	ErrCodeNoVariants           ErrorCode = "NO_VARIANTS"
	ErrCodeProductCreateFailed  ErrorCode = "PRODUCT_CREATE_FAILED"
	ErrCodeProductPublishFailed ErrorCode = "PRODUCT_PUBLISH_FAILED"
	ErrCodeVendorAPIError       ErrorCode = "VENDOR_API_ERROR"
)

// StandardError represents a structured application error. Retryable is
// informational; the workflow itself never retries.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewConfigMissingError creates a fatal configuration error.
func NewConfigMissingError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigMissing,
		Message:   "Required credentials are missing",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadFailedError creates a fatal asset upload error. Nothing can be
// published without the uploaded asset id, so this aborts the run.
func NewUploadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadFailed,
		Message:   "Artwork upload failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogFetchFailedError creates a per-blueprint catalog read error.
func NewCatalogFetchFailedError(stage string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogFetchFailed,
		Message:   "Catalog discovery request failed",
		Details:   fmt.Sprintf("stage: %s, error: %s", stage, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProductCreateFailedError creates a per-blueprint creation error.
func NewProductCreateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProductCreateFailed,
		Message:   "Product creation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProductPublishFailedError creates a per-blueprint publish error.
func NewProductPublishFailedError(productID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProductPublishFailed,
		Message:   "Product publish failed",
		Details:   fmt.Sprintf("productId: %s, error: %s", productID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewVendorAPIError wraps a non-2xx vendor response.
func NewVendorAPIError(endpoint string, status int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeVendorAPIError,
		Message:   "Vendor API returned an error status",
		Details:   fmt.Sprintf("endpoint: %s, status: %d, body: %s", endpoint, status, body),
		Retryable: status >= 500,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the structured code from an error, or "UNKNOWN_ERROR"
// for plain errors.
func CodeOf(err error) string {
	if stdErr, ok := err.(*StandardError); ok {
		return string(stdErr.Code)
	}
	return "UNKNOWN_ERROR"
}
