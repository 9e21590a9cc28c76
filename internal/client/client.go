package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kelsos/sui-wallet/internal/config"
	"github.com/kelsos/sui-wallet/internal/logger"
	"github.com/kelsos/sui-wallet/internal/models"
)

// APIClient handles all HTTP communication with the balance backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client with the given configuration
func NewAPIClient(cfg *config.Config) *APIClient {
	return &APIClient{
		baseURL: cfg.APIBaseURL(),
		httpClient: &http.Client{
			Timeout: cfg.BackendTimeout,
		},
	}
}

// BuildURL constructs a full URL for the given endpoint
func (c *APIClient) BuildURL(endpoint string) string {
	return c.baseURL + endpoint
}

// GetAddressBalance queries the SUI balance and other coins held by address.
// A backend failure payload is returned as APIError, not as an error.
func (c *APIClient) GetAddressBalance(ctx context.Context, address string) (*models.AddressBalance, *models.APIError, error) {
	var result models.AddressBalance
	apiErr, err := c.get(ctx, "/balance/"+url.PathEscape(address), &result)
	if err != nil || apiErr != nil {
		return nil, apiErr, err
	}
	return &result, nil, nil
}

// GetObject fetches the fields of the object configured on the backend
func (c *APIClient) GetObject(ctx context.Context) (*models.ObjectFields, *models.APIError, error) {
	var result models.ObjectFields
	apiErr, err := c.get(ctx, "/object", &result)
	if err != nil || apiErr != nil {
		return nil, apiErr, err
	}
	return &result, nil, nil
}

// get performs a GET request. Any JSON body carrying an "error" field is
// treated as a backend payload regardless of the status code.
func (c *APIClient) get(ctx context.Context, endpoint string, result interface{}) (*models.APIError, error) {
	target := c.BuildURL(endpoint)
	start := time.Now()
	logger.Debug("Starting GET request to %s", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Request to %s failed after %v: %v", target, time.Since(start), err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("Request to %s completed in %v with status %d", target, time.Since(start), resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if gjson.ValidBytes(body) {
		if errField := gjson.GetBytes(body, "error"); errField.Exists() && errField.Type != gjson.Null {
			apiErr := &models.APIError{Error: errField.String()}
			if details := gjson.GetBytes(body, "details"); details.Exists() {
				apiErr.Details = json.RawMessage(details.Raw)
			}
			logger.Warn("%s: backend returned error %q (HTTP %d)", target, apiErr.Error, resp.StatusCode)
			return apiErr, nil
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Error("%s: HTTP error %d: %s", target, resp.StatusCode, string(body))
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, result); err != nil {
		logger.Error("%s: Error decoding response: %v", target, err)
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	return nil, nil
}
