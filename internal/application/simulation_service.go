package application

import (
	"context"
	"log/slog"

	"github.com/bnema/astro-impact/internal/domain"
)

// Presenter receives a computed impact. simErr is only set for invariant violations
// in the reference data; the result is still complete apart from the failed part.
type Presenter func(result domain.ImpactResult, simErr error) error

type SimulationService struct {
	catalog *CatalogService
	scale   domain.SeismicScale
	logger  *slog.Logger
}

func NewSimulationService(catalog *CatalogService, scale domain.SeismicScale, logger *slog.Logger) *SimulationService {
	if scale == nil {
		scale = domain.RichterScale
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SimulationService{
		catalog: catalog,
		scale:   scale,
		logger:  logger,
	}
}

// Run simulates the session's selection. The session is cleared after present returns.
func (s *SimulationService) Run(session *domain.Session, present Presenter) error {
	return session.Simulate(s.scale, func(result domain.ImpactResult, simErr error) error {
		if simErr != nil {
			s.logInvariant(result, simErr)
		}
		return present(result, simErr)
	})
}

// RunFor resolves an asteroid ID and a country name through the catalog and simulates
// them in a throwaway session.
func (s *SimulationService) RunFor(ctx context.Context, id domain.AsteroidID, countryName string, present Presenter) error {
	asteroid, err := s.catalog.Asteroid(ctx, id)
	if err != nil {
		return err
	}

	country, err := s.catalog.Country(ctx, countryName)
	if err != nil {
		return err
	}

	session := domain.NewSession()
	session.SetAsteroid(asteroid)
	session.SetCountry(country)

	return s.Run(session, present)
}

// RunRandom fills whichever selections are missing with random picks and simulates.
func (s *SimulationService) RunRandom(ctx context.Context, session *domain.Session, present Presenter) error {
	if err := s.FillRandom(ctx, session); err != nil {
		return err
	}

	return s.Run(session, present)
}

func (s *SimulationService) FillRandom(ctx context.Context, session *domain.Session) error {
	if _, ok := session.Asteroid(); !ok {
		asteroid, err := s.catalog.RandomAsteroid(ctx)
		if err != nil {
			return err
		}
		session.SetAsteroid(asteroid)
	}

	if _, ok := session.Country(); !ok {
		country, err := s.catalog.RandomCountry(ctx)
		if err != nil {
			return err
		}
		session.SetCountry(country)
	}

	return nil
}

func (s *SimulationService) logInvariant(result domain.ImpactResult, err error) {
	attrs := []any{
		slog.String("asteroid", string(result.Asteroid.ID)),
		slog.String("country", result.Country.Name),
		slog.Float64("energy_j", result.EnergyJ),
		slog.Any("error", err),
	}
	if result.Seismic != nil {
		attrs = append(attrs, slog.Float64("magnitude", result.Seismic.Magnitude))
	}

	if domain.IsInvariantViolation(err) {
		s.logger.Error("reference data defect", attrs...)
		return
	}
	s.logger.Error("simulation failed", attrs...)
}
