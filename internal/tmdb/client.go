// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/movieverse/internal/config"
	"github.com/tomtom215/movieverse/internal/logging"
	"github.com/tomtom215/movieverse/internal/metrics"
)

// Endpoint labels used in logs and metrics.
const (
	EndpointSearch  = "search"
	EndpointCredits = "credits"
	EndpointVideos  = "videos"
	EndpointDetails = "details"
)

const (
	// DefaultRequestTimeout bounds a single TMDB call.
	DefaultRequestTimeout = 5 * time.Second

	// maxErrorBodySize limits how much of a non-2xx body is kept for diagnostics.
	maxErrorBodySize = 64 * 1024

	// maxResponseSize guards decoding against runaway bodies.
	maxResponseSize = 4 << 20
)

// API is the set of TMDB operations the metadata layer depends on.
type API interface {
	SearchMovie(ctx context.Context, query string) (*SearchResponse, error)
	Credits(ctx context.Context, movieID int64) (*Credits, error)
	Videos(ctx context.Context, movieID int64) (*Videos, error)
	Details(ctx context.Context, movieID int64) (*MovieDetails, error)
}

// Client talks to TMDB over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLimiter overrides the outbound rate limiter. A nil limiter disables limiting.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithLogger overrides the component logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.TMDBConfig, opts ...Option) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		timeout:  timeout,
		// The per-request context deadline is the effective bound; this is a backstop.
		httpClient: &http.Client{Timeout: timeout + time.Second},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), burst),
		logger:     logging.WithComponent("tmdb"),
	}
	if cfg.RateLimit <= 0 {
		c.limiter = nil
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchMovie runs a title search.
func (c *Client) SearchMovie(ctx context.Context, query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)

	var out SearchResponse
	if err := c.get(ctx, EndpointSearch, "/search/movie", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Credits fetches the cast and crew of a movie.
func (c *Client) Credits(ctx context.Context, movieID int64) (*Credits, error) {
	var out Credits
	if err := c.get(ctx, EndpointCredits, fmt.Sprintf("/movie/%d/credits", movieID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Videos fetches trailers, teasers and clips of a movie.
func (c *Client) Videos(ctx context.Context, movieID int64) (*Videos, error) {
	var out Videos
	if err := c.get(ctx, EndpointVideos, fmt.Sprintf("/movie/%d/videos", movieID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Details fetches the primary movie record, which carries the IMDb id.
func (c *Client) Details(ctx context.Context, movieID int64) (*MovieDetails, error) {
	var out MovieDetails
	if err := c.get(ctx, EndpointDetails, fmt.Sprintf("/movie/%d", movieID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs one GET and decodes a 2xx JSON body into out.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	outcome := "unavailable"
	defer func() {
		metrics.RecordTMDBRequest(endpoint, outcome, time.Since(start))
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %s rate limit wait: %w", ErrUnavailable, endpoint, err)
		}
	}

	reqURL := c.buildURL(path, params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: create %s request: %w", ErrUnavailable, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(redact(err, c.apiKey)).Str("endpoint", endpoint).Msg("TMDB request failed")
		return fmt.Errorf("%w: %s request: %w", ErrUnavailable, endpoint, redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
		c.logger.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("TMDB returned non-2xx")
		return serr
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
		// A deadline hit mid-body is a timeout, not a bad payload.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s read body: %w", ErrUnavailable, endpoint, ctxErr)
		}
		outcome = "malformed"
		c.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("TMDB response could not be decoded")
		return fmt.Errorf("%w: %s: %w", ErrMalformed, endpoint, err)
	}

	outcome = "success"
	return nil
}

// buildURL appends path and query (api_key first, then language if set) to the base URL.
func (c *Client) buildURL(path string, params url.Values) string {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}
	return c.baseURL + path + "?" + q.Encode()
}

// readBodyForError reads at most maxErrorBodySize bytes for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// redact strips the API key from errors that embed the request URL.
func redact(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return &url.Error{
			Op:  uerr.Op,
			URL: strings.ReplaceAll(uerr.URL, apiKey, "REDACTED"),
			Err: uerr.Err,
		}
	}
	return err
}
