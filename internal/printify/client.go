package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"printify-automation/internal/common/httpclient"
	"printify-automation/internal/common/metrics"
)

// Client talks to the Printify REST API on behalf of one store.
type Client struct {
	apiKey     string
	storeID    string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client for the given store. baseURL may be empty for
// the production API; tests point it at a local server.
func NewClient(apiKey, storeID, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.printify.com/v1"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		storeID:    storeID,
		baseURL:    baseURL,
		httpClient: httpclient.New(timeout),
	}
}

// UploadImage reads the file at path and uploads it as a multipart form
// to the uploads endpoint. It returns the vendor-assigned asset id.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	defer observe("uploads/images", time.Now())

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open artwork file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read artwork file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/uploads/images.json", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to upload image (status %d): %s", resp.StatusCode, string(body))
	}

	var uploaded UploadedImage
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return "", fmt.Errorf("failed to unmarshal upload response: %w", err)
	}
	if uploaded.ID == "" {
		return "", fmt.Errorf("upload response carried no id")
	}

	return uploaded.ID, nil
}

// ListBlueprints fetches every product blueprint in the vendor catalog.
func (c *Client) ListBlueprints(ctx context.Context) ([]Blueprint, error) {
	defer observe("catalog/blueprints", time.Now())

	url := fmt.Sprintf("%s/catalog/blueprints.json", c.baseURL)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var blueprints []Blueprint
	if err := json.Unmarshal(body, &blueprints); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blueprints: %w", err)
	}

	return blueprints, nil
}

// ListPrintProviders fetches the manufacturers able to produce a blueprint.
func (c *Client) ListPrintProviders(ctx context.Context, blueprintID int) ([]PrintProvider, error) {
	defer observe("catalog/print_providers", time.Now())

	url := fmt.Sprintf("%s/catalog/blueprints/%d/print_providers.json", c.baseURL, blueprintID)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var providers []PrintProvider
	if err := json.Unmarshal(body, &providers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal print providers: %w", err)
	}

	return providers, nil
}

// ListVariants fetches the sellable variants of a blueprint from one
// provider. The endpoint wraps the list in a {"variants": [...]} object;
// a bare array is accepted too.
func (c *Client) ListVariants(ctx context.Context, blueprintID, providerID int) ([]Variant, error) {
	defer observe("catalog/variants", time.Now())

	url := fmt.Sprintf("%s/catalog/blueprints/%d/print_providers/%d/variants.json", c.baseURL, blueprintID, providerID)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	return decodeVariants(body)
}

func decodeVariants(body []byte) ([]Variant, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var variants []Variant
		if err := json.Unmarshal(body, &variants); err != nil {
			return nil, fmt.Errorf("failed to unmarshal variants: %w", err)
		}
		return variants, nil
	}

	var wrapped variantList
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to unmarshal variants: %w", err)
	}
	return wrapped.Variants, nil
}

// CreateProduct submits a product payload to the store and returns the
// created product id.
func (c *Client) CreateProduct(ctx context.Context, product *Product) (string, error) {
	defer observe("shops/products", time.Now())

	url := fmt.Sprintf("%s/shops/%s/products.json", c.baseURL, c.storeID)

	payload, err := json.Marshal(product)
	if err != nil {
		return "", fmt.Errorf("failed to marshal product: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to create product (status %d): %s", resp.StatusCode, string(body))
	}

	var created CreatedProduct
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("failed to unmarshal create response: %w", err)
	}

	return created.ID, nil
}

// PublishProduct pushes an already-created product to the storefront.
func (c *Client) PublishProduct(ctx context.Context, productID string, opts PublishOptions) error {
	defer observe("shops/products/publish", time.Now())

	url := fmt.Sprintf("%s/shops/%s/products/%s/publish.json", c.baseURL, c.storeID, productID)

	payload, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal publish options: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to publish product (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}

// get issues an authorized GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func observe(endpoint string, start time.Time) {
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
