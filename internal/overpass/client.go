package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/utm-transit/campuskit/internal/model"
)

// Client default values.
const (
	// DefaultEndpoint is the public Overpass API interpreter endpoint.
	DefaultEndpoint = "https://overpass-api.de/api/interpreter"

	// DefaultTimeout bounds the single POST round trip. Overpass takes
	// its time on composite bbox queries, so this is generous.
	DefaultTimeout = 180 * time.Second

	// DefaultMaxBodySize caps the response body read. A campus-sized
	// bbox yields a few megabytes at most; the cap guards against a
	// misconfigured query covering half a country.
	DefaultMaxBodySize = 64 * 1024 * 1024 // 64MB

	// errorBodyLimit is how much of a non-200 response body is included
	// in the returned error for diagnosis.
	errorBodyLimit = 500
)

// Client issues Overpass API queries. The zero value is not usable;
// construct with New.
type Client struct {
	// httpClient carries the transport timeout.
	httpClient *http.Client

	// endpoint is the Overpass interpreter URL.
	endpoint string

	// userAgent identifies this tool to the Overpass operators.
	userAgent string

	// maxBodySize limits the response body read.
	maxBodySize int64

	// timeout is the per-request timeout, also sent to the server as
	// the query's [timeout:] directive.
	timeout time.Duration

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets a non-default Overpass interpreter URL, e.g. a
// self-hosted mirror.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the request timeout. The same value is embedded in
// the query's [timeout:] directive.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates an Overpass client with the given options applied over
// the defaults.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:    DefaultEndpoint,
		userAgent:   "campuskit (+https://github.com/utm-transit/campuskit)",
		maxBodySize: DefaultMaxBodySize,
		timeout:     DefaultTimeout,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = &http.Client{Timeout: c.timeout}

	return c
}

// response is the top-level Overpass JSON envelope.
type response struct {
	Elements []model.Element `json:"elements"`
}

// Fetch runs the composite POI query for the padded bounding box and
// returns the raw elements. It performs exactly one POST with no retry
// or backoff: on a transport fault or non-200 status it returns an
// error and the caller aborts the run.
func (c *Client) Fetch(ctx context.Context, bound orb.Bound) ([]model.Element, error) {
	query := BuildQuery(bound, c.timeout)

	c.logger.Debug("querying Overpass API",
		"endpoint", c.endpoint,
		"bbox", FormatBBox(bound),
	)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create Overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort cleanup

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit)) //nolint:errcheck // Body is diagnostic only
		return nil, fmt.Errorf("overpass returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed response
	decoder := json.NewDecoder(io.LimitReader(resp.Body, c.maxBodySize))
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode Overpass response: %w", err)
	}

	c.logger.Debug("retrieved raw elements", "count", len(parsed.Elements))

	return parsed.Elements, nil
}
