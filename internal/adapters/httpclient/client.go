// Package httpclient is the shared outbound HTTP layer for the data providers. Every
// call goes through a circuit breaker that fails fast once an upstream keeps failing;
// requests are never retried.
package httpclient

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

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/sony/gobreaker/v2"
)

const (
	maxResponseBytes = 64 << 20
	maxErrorBody     = 512
	userAgent        = "astro-impact"

	// consecutive transport or 5xx failures before the breaker opens
	tripAfter = 3
)

type Client struct {
	provider string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	timeout  time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithTimeout bounds each request when the caller's context has no deadline.
// Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func New(provider string, opts ...Option) *Client {
	c := &Client{
		provider: provider,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        provider,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
	})

	return c
}

func (c *Client) Provider() string {
	return c.provider
}

// GetJSON issues a GET and decodes a 2xx body into out. Failures are returned as
// *domain.ProviderError wrapping one of the domain.ErrProvider* sentinels.
func (c *Client) GetJSON(ctx context.Context, endpoint string, out any) error {
	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", c.provider, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.http.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode >= http.StatusInternalServerError {
			return r, fmt.Errorf("upstream returned %d", r.StatusCode)
		}
		return r, nil
	})
	if resp != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil && resp == nil {
		return &domain.ProviderError{
			Provider: c.provider,
			Err:      fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, redact(err)),
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return &domain.ProviderError{
			Provider: c.provider,
			Err:      fmt.Errorf("%w: decode response: %w", domain.ErrProviderUnavailable, err),
		}
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	sentinel := domain.ErrProviderStatus
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		sentinel = domain.ErrProviderUnauthorized
	}

	return &domain.ProviderError{
		Provider:   c.provider,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
		Err:        sentinel,
	}
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || c.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.timeout)
}

// redact drops the request URL from transport errors so query credentials never end
// up in logs or terminal output.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// BuildURL joins path onto baseURL and sets query.
func BuildURL(baseURL string, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint := parsed.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}
