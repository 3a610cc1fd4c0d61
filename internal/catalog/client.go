package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves a catalog from a remote source.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Fetch(ctx context.Context) (*Catalog, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client downloads a catalog JSON document over HTTP.
type Client struct {
	url       *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "marquee/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given catalog URL. A bare host:port/path
// is treated as http.
func NewClient(rawURL string) (*Client, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		url: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// URL returns the catalog location.
func (c *Client) URL() string {
	if c == nil {
		return ""
	}
	return c.url.String()
}

// Fetch downloads and validates the catalog.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog %s returned status %d", c.url.Path, resp.StatusCode)
	}

	var cat Catalog
	if err := json.NewDecoder(resp.Body).Decode(&cat); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	trim(&cat)
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &cat, nil
}

func parseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog url is required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse events_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse events_url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
