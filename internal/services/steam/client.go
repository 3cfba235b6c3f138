package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/playerdna/internal/model"
)

const (
	DefaultBaseURL = "https://api.steampowered.com"
	DefaultTimeout = 10 * time.Second

	playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v2/"
	userAgent           = "playerdna/1.0"

	// maxBodySize bounds how much of an upstream response is read
	maxBodySize = 8 << 20
)

// ErrNoAPIKey is returned when the client has no credential to call Steam with
var ErrNoAPIKey = fmt.Errorf("%w: steam api key not configured", model.ErrUpstreamUnavailable)

// Config holds settings for the Steam Web API client
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns the production Steam endpoint with no credential
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client calls the Steam Web API. Every failure it returns wraps
// model.ErrUpstreamUnavailable.
type Client struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a new Steam Web API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// HasAPIKey reports whether live calls can be attempted
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// PlayerSummaries fetches GetPlayerSummaries for a single player and returns
// the response body untouched
func (c *Client) PlayerSummaries(ctx context.Context, steamID model.SteamID) (model.Document, error) {
	if !c.HasAPIKey() {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamids", string(steamID))

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, playerSummariesPath, params.Encode())

	body, err := c.get(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("fetch player summaries: %w", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, fullURL string) (model.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", model.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUpstreamUnavailable, redact(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", model.ErrUpstreamUnavailable, redact(err))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", model.ErrUpstreamUnavailable)
	}

	return model.Document(body), nil
}

// redact strips the request URL (which carries the API key) from transport errors
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
