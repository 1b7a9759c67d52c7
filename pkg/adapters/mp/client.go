// Package mp is a minimal Materials Project client for retrieving
// Pourbaix entry sets over HTTP. It normalizes the API's loosely typed
// payload into domain entries; the filesystem store persists them so
// repeated runs do not hit the API again.
package mp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/elchem/pourbaix/internal/logging"
	"github.com/elchem/pourbaix/pkg/domain"
)

// DefaultBaseURL is the production Materials Project API endpoint.
const DefaultBaseURL = "https://api.materialsproject.org"

// Client fetches Pourbaix entries for single elements.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithLogger configures a logger for request events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client. The API key is sent as the X-API-KEY header on
// every request.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchEntries retrieves the Pourbaix entry set for the element-O-H
// chemical system of symbol.
func (c *Client) FetchEntries(ctx context.Context, symbol string) ([]domain.Entry, error) {
	u := fmt.Sprintf("%s/pourbaix/entries?elements=%s", c.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", symbol, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch entries for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", symbol, domain.ErrEntriesNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("fetch entries for %s: API key rejected (status %d)", symbol, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch entries for %s: unexpected status %d", symbol, resp.StatusCode)
	}

	var payload struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode response: %v: %w", symbol, err, domain.ErrMalformedEntries)
	}

	entries, err := normalize(payload.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}

	c.logger.Info("entries fetched",
		"element", symbol,
		"count", len(entries),
		"elapsed", time.Since(start))
	return entries, nil
}
