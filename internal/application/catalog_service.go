package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports"
)

var ErrNothingToPick = errors.New("nothing to pick from")

// CatalogService exposes the browsable datasets. Asteroids always come from a cache
// that is fresh at the time of the call; countries are fetched on every call.
type CatalogService struct {
	cache     *CacheService
	countries ports.CountryRegistry
	pick      func(n int) int
}

type CatalogOption func(*CatalogService)

// WithPicker replaces the random index source used by the Random* methods.
func WithPicker(pick func(n int) int) CatalogOption {
	return func(s *CatalogService) {
		if pick != nil {
			s.pick = pick
		}
	}
}

func NewCatalogService(cache *CacheService, countries ports.CountryRegistry, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		cache:     cache,
		countries: countries,
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *CatalogService) Asteroids(ctx context.Context) ([]domain.Asteroid, error) {
	envelope, err := s.cache.EnsureFresh(ctx)
	if err != nil {
		return nil, err
	}

	return envelope.Objects, nil
}

func (s *CatalogService) Countries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countries.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}

	return countries, nil
}

func (s *CatalogService) Asteroid(ctx context.Context, id domain.AsteroidID) (domain.Asteroid, error) {
	asteroids, err := s.Asteroids(ctx)
	if err != nil {
		return domain.Asteroid{}, err
	}

	asteroid, err := domain.FindAsteroid(asteroids, id)
	if err != nil {
		return domain.Asteroid{}, fmt.Errorf("asteroid %q: %w", id, err)
	}

	return asteroid, nil
}

func (s *CatalogService) Country(ctx context.Context, name string) (domain.Country, error) {
	countries, err := s.Countries(ctx)
	if err != nil {
		return domain.Country{}, err
	}

	country, err := domain.FindCountry(countries, name)
	if err != nil {
		return domain.Country{}, fmt.Errorf("country %q: %w", name, err)
	}

	return country, nil
}

func (s *CatalogService) RandomAsteroid(ctx context.Context) (domain.Asteroid, error) {
	asteroids, err := s.Asteroids(ctx)
	if err != nil {
		return domain.Asteroid{}, err
	}
	if len(asteroids) == 0 {
		return domain.Asteroid{}, fmt.Errorf("random asteroid: %w", ErrNothingToPick)
	}

	return asteroids[s.pick(len(asteroids))], nil
}

func (s *CatalogService) RandomCountry(ctx context.Context) (domain.Country, error) {
	countries, err := s.Countries(ctx)
	if err != nil {
		return domain.Country{}, err
	}
	if len(countries) == 0 {
		return domain.Country{}, fmt.Errorf("random country: %w", ErrNothingToPick)
	}

	return countries[s.pick(len(countries))], nil
}
