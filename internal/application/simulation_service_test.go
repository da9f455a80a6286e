package application

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationServiceRunForResolvesSelection(t *testing.T) {
	catalog, _ := newTestCatalog(t,
		[]domain.Asteroid{{ID: "1", DiameterMinM: 100, DiameterMaxM: 200, VelocityKmS: 20}},
		[]domain.Country{domain.NewCountry("Netherlands", 17_400_000, 41_850)},
	)
	service := NewSimulationService(catalog, nil, nil)

	var got domain.ImpactResult
	err := service.RunFor(context.Background(), "1", "Netherlands", func(result domain.ImpactResult, simErr error) error {
		require.NoError(t, simErr)
		got = result
		return nil
	})

	require.NoError(t, err)
	assert.InDelta(t, 253.4, got.MegatonsTNT, 0.1)
	assert.Equal(t, "Netherlands", got.Country.Name)
}

func TestSimulationServiceRunClearsSession(t *testing.T) {
	service := NewSimulationService(nil, nil, nil)
	session := domain.NewSession()
	session.SetAsteroid(domain.Asteroid{ID: "1", DiameterMinM: 100, DiameterMaxM: 200, VelocityKmS: 20})
	session.SetCountry(domain.NewCountry("Netherlands", 17_400_000, 41_850))

	require.NoError(t, service.Run(session, func(domain.ImpactResult, error) error { return nil }))
	assert.False(t, session.Ready())
}

func TestSimulationServiceLogsInvariantViolationsAtErrorLevel(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	partial := domain.SeismicScale{{MinMagnitude: 1, MaxMagnitude: 2, Label: "Micro"}}
	service := NewSimulationService(nil, partial, logger)

	session := domain.NewSession()
	session.SetAsteroid(domain.Asteroid{ID: "1", DiameterMinM: 100, DiameterMaxM: 200, VelocityKmS: 20})
	session.SetCountry(domain.NewCountry("Netherlands", 17_400_000, 41_850))

	var presentedErr error
	err := service.Run(session, func(_ domain.ImpactResult, simErr error) error {
		presentedErr = simErr
		return nil
	})

	require.NoError(t, err)
	assert.ErrorIs(t, presentedErr, domain.ErrNoSeismicBand)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "reference data defect")
	assert.False(t, session.Ready())
}

func TestSimulationServiceRunRandomKeepsExistingSelection(t *testing.T) {
	catalog, _ := newTestCatalog(t,
		[]domain.Asteroid{{ID: "random", DiameterMinM: 10, DiameterMaxM: 20, VelocityKmS: 15}},
		nil,
		WithPicker(func(int) int { return 0 }),
	)
	service := NewSimulationService(catalog, nil, nil)

	session := domain.NewSession()
	session.SetCountry(domain.NewCountry("Peru", 34_000_000, 1_285_216))

	var got domain.ImpactResult
	err := service.RunRandom(context.Background(), session, func(result domain.ImpactResult, _ error) error {
		got = result
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AsteroidID("random"), got.Asteroid.ID)
	assert.Equal(t, "Peru", got.Country.Name)
}
