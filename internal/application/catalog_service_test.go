package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, objects []domain.Asteroid, countries []domain.Country, opts ...CatalogOption) (*CatalogService, *mocks.MockCountryRegistry) {
	t.Helper()

	repo := mocks.NewMockEnvelopeRepository(t)
	registry := mocks.NewMockCountryRegistry(t)
	if objects != nil {
		repo.EXPECT().Load(mock.Anything).Return(domain.NewEnvelope(testNow, objects), nil).Maybe()
	}
	if countries != nil {
		registry.EXPECT().Countries(mock.Anything).Return(countries, nil).Maybe()
	}

	cache := NewCacheService(repo, mocks.NewMockObjectFeed(t), clockwork.NewFakeClockAt(testNow), nil)
	return NewCatalogService(cache, registry, opts...), registry
}

func TestCatalogServiceLooksUpAsteroidAndCountry(t *testing.T) {
	catalog, _ := newTestCatalog(t,
		[]domain.Asteroid{{ID: "2000433", Name: "433 Eros"}},
		[]domain.Country{domain.NewCountry("Netherlands", 17_400_000, 41_850)},
	)

	asteroid, err := catalog.Asteroid(context.Background(), "2000433")
	require.NoError(t, err)
	assert.Equal(t, "433 Eros", asteroid.Name)

	country, err := catalog.Country(context.Background(), "netherlands")
	require.NoError(t, err)
	assert.Equal(t, "Netherlands", country.Name)

	_, err = catalog.Asteroid(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrAsteroidNotFound)
}

func TestCatalogServiceRandomPicksUseInjectedPicker(t *testing.T) {
	catalog, _ := newTestCatalog(t,
		[]domain.Asteroid{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]domain.Country{domain.NewCountry("Chile", 1, 1), domain.NewCountry("Peru", 1, 1)},
		WithPicker(func(n int) int { return n - 1 }),
	)

	asteroid, err := catalog.RandomAsteroid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.AsteroidID("c"), asteroid.ID)

	country, err := catalog.RandomCountry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Peru", country.Name)
}

func TestCatalogServiceRandomCountryWithEmptyRegistry(t *testing.T) {
	catalog, _ := newTestCatalog(t, nil, []domain.Country{})

	_, err := catalog.RandomCountry(context.Background())
	assert.ErrorIs(t, err, ErrNothingToPick)
}

func TestCatalogServiceWrapsRegistryErrors(t *testing.T) {
	catalog, registry := newTestCatalog(t, nil, nil)
	registry.EXPECT().Countries(mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := catalog.Countries(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "fetch countries: boom")
}
