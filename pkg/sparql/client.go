// Package sparql provides a minimal client for SPARQL-over-HTTP endpoints that
// speak the SPARQL 1.1 JSON results format. Requests are synchronous with a
// single configurable timeout; there is no retry, pagination or rate limiting,
// and any transport or endpoint failure aborts the caller's run.
package sparql

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/scholarlink/scholarlink/pkg/constants"
	"github.com/scholarlink/scholarlink/pkg/errors"
)

// resultsMediaType is the Accept value for the SPARQL JSON results format.
const resultsMediaType = "application/sparql-results+json"

// Client issues SPARQL queries against HTTP(S) endpoints.
type Client struct {
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithUserAgent sets the User-Agent header sent to endpoints. Public SPARQL
// endpoints ask clients to identify themselves.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new SPARQL client.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: constants.DefaultHTTPTimeout},
		userAgent: "scholarlink/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query POSTs the query to the endpoint and decodes the JSON result set.
// The source ID labels errors only; it plays no part in the request.
func (c *Client) Query(ctx context.Context, source, endpoint, query string) (*ResultSet, error) {
	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WrapAPI(source, 0, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", resultsMediaType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errors.APIError{
			Source:   source,
			Endpoint: endpoint,
			Message:  "query request failed",
			Err:      err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &errors.APIError{
			Source:     source,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var rs ResultSet
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		return nil, errors.WrapParse("json", endpoint, err)
	}
	return &rs, nil
}
