package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ErrorResponse is the error body returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// Response is a successful API response
type Response struct {
	Body      json.RawMessage
	Source    string
	RequestID string
}

// Do performs an HTTP request and returns the raw JSON body
func (c *Client) Do(method, path string, query url.Values) (*Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s (HTTP %d)", errResp.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("failed to parse response: invalid JSON")
	}

	return &Response{
		Body:      json.RawMessage(respBody),
		Source:    resp.Header.Get("X-Data-Source"),
		RequestID: resp.Header.Get("X-Request-ID"),
	}, nil
}

// Get performs a GET request
func (c *Client) Get(path string, query url.Values) (*Response, error) {
	return c.Do(http.MethodGet, path, query)
}

// GetPlayerDocument fetches one of the per-player documents
func (c *Client) GetPlayerDocument(path, steamID string) (*Response, error) {
	return c.Get(path, url.Values{"steamId": []string{steamID}})
}
