// Package httpclient provides the shared timeout-bounded HTTP client used
// by vendor API clients.
package httpclient

import (
	"net/http"
	"time"
)

// New returns an HTTP client with the given overall request timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
