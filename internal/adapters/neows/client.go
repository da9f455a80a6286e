// Package neows reads the NASA Near Earth Object Web Service feed.
package neows

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/astro-impact/internal/adapters/httpclient"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports"
)

const (
	ProviderName   = "neows"
	DefaultBaseURL = "https://api.nasa.gov/neo/rest/v1"
	feedPath       = "feed"
	dateLayout     = time.DateOnly
)

type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
}

var _ ports.ObjectFeed = (*Client)(nil)

func NewClient(baseURL string, apiKey string, opts ...httpclient.Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		http:    httpclient.New(ProviderName, opts...),
	}
}

// Feed returns the objects approaching between start and end, keyed by approach date
// (YYYY-MM-DD). A missing API key fails without contacting the service.
func (c *Client) Feed(ctx context.Context, start time.Time, end time.Time) (map[string][]domain.Asteroid, error) {
	if c.apiKey == "" {
		return nil, &domain.ProviderError{
			Provider: ProviderName,
			Err:      fmt.Errorf("%w: API_KEY is not set", domain.ErrProviderUnauthorized),
		}
	}

	query := url.Values{}
	query.Set("start_date", start.Format(dateLayout))
	query.Set("end_date", end.Format(dateLayout))
	query.Set("api_key", c.apiKey)

	endpoint, err := httpclient.BuildURL(c.baseURL, feedPath, query)
	if err != nil {
		return nil, err
	}

	var payload feedResponse
	if err := c.http.GetJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.Asteroid, len(payload.NearEarthObjects))
	for date, objects := range payload.NearEarthObjects {
		asteroids, err := ObjectsToDomain(objects)
		if err != nil {
			return nil, &domain.ProviderError{
				Provider: ProviderName,
				Err:      fmt.Errorf("%w: %s: %w", domain.ErrProviderUnavailable, date, err),
			}
		}
		grouped[date] = asteroids
	}

	return grouped, nil
}
