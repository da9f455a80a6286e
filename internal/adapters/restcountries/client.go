// Package restcountries reads country population and area from the REST Countries API.
package restcountries

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/bnema/astro-impact/internal/adapters/httpclient"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports"
)

const (
	ProviderName   = "restcountries"
	DefaultBaseURL = "https://restcountries.com/v3.1"
	allPath        = "all"
	fields         = "name,population,area"
)

type countryResponse struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Population int64   `json:"population"`
	Area       float64 `json:"area"`
}

type Client struct {
	baseURL string
	http    *httpclient.Client
}

var _ ports.CountryRegistry = (*Client)(nil)

func NewClient(baseURL string, opts ...httpclient.Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{baseURL: baseURL, http: httpclient.New(ProviderName, opts...)}
}

// Countries returns every country with a positive area, ordered by name.
func (c *Client) Countries(ctx context.Context) ([]domain.Country, error) {
	endpoint, err := httpclient.BuildURL(c.baseURL, allPath, url.Values{"fields": {fields}})
	if err != nil {
		return nil, err
	}

	var payload []countryResponse
	if err := c.http.GetJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	countries := make([]domain.Country, 0, len(payload))
	for _, entry := range payload {
		name := strings.TrimSpace(entry.Name.Common)
		if name == "" || entry.Area <= 0 {
			continue
		}
		countries = append(countries, domain.NewCountry(name, entry.Population, entry.Area))
	}

	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})

	return countries, nil
}
