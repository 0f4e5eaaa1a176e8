// Package gateway is the single path to the cargo backend: every outgoing
// request is stamped with the current bearer token at send time, bounded by
// one global timeout, and screened by the 401 recovery hook that clears the
// stored credentials.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargopanel/dashboard-gateway/internal/api/metrics"
	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// DefaultTimeout bounds every upstream call.
const DefaultTimeout = 600 * time.Second

// TokenSource yields the bearer token for outgoing requests. It is consulted
// per request, at send time, so a login or logout between request
// construction and send always wins.
type TokenSource interface {
	Token() string
}

// Response is a completed upstream call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// StatusError is a non-2xx upstream response. A 401 matches
// domain.ErrUnauthorized under errors.Is.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == domain.ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Options tunes a Client. The zero value gives DefaultTimeout and a fresh
// http.Client.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client issues authenticated requests against a fixed base URL.
type Client struct {
	base           *url.URL
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            zerolog.Logger
}

// NewClient builds a Client. onUnauthorized runs once per 401 response,
// before the error is returned to the caller; pass nil to disable the
// recovery hook (tests).
func NewClient(baseURL string, tokens TokenSource, onUnauthorized func(), opts Options) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("gateway: base url %q must be absolute", baseURL)
	}

	// Copy a supplied client so defaulting the timeout never mutates a
	// caller's shared instance.
	hc := &http.Client{}
	if opts.HTTPClient != nil {
		cp := *opts.HTTPClient
		hc = &cp
	}
	if hc.Timeout == 0 {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc.Timeout = timeout
	}

	return &Client{
		base:           base,
		http:           hc,
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		log:            opts.Logger,
	}, nil
}

// Do issues one request. The endpoint is joined to the base URL path; query
// replaces the query string as-is (callers assemble it from defined values
// only). The response body is fully read before returning.
//
// A 401 clears credentials through the onUnauthorized hook and still returns
// the error, so the caller's own failure path runs too. No retries happen at
// this layer.
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) (*Response, error) {
	u := *c.base
	u.Path = path.Join(u.Path, endpoint)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(method, "error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("gateway: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestDuration.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.UpstreamUnauthorizedTotal.Inc()
		c.log.Warn().Str("method", method).Str("endpoint", endpoint).Msg("backend rejected credentials, clearing session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}
