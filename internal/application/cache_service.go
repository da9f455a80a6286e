package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports"
	"github.com/jonboulle/clockwork"
)

const (
	// LookbackDays is the width of the feed window requested on every refresh, today included.
	LookbackDays = 7

	DefaultRefreshAttempts = 1
	MaxRefreshAttempts     = 5
)

type CacheService struct {
	repo     ports.EnvelopeRepository
	feed     ports.ObjectFeed
	clock    clockwork.Clock
	logger   *slog.Logger
	attempts int
}

type CacheOption func(*CacheService)

// WithRefreshAttempts bounds how often EnsureFresh retries a refresh that produced an
// empty feed. Values outside 1..MaxRefreshAttempts are clamped.
func WithRefreshAttempts(attempts int) CacheOption {
	return func(s *CacheService) {
		switch {
		case attempts < 1:
			s.attempts = 1
		case attempts > MaxRefreshAttempts:
			s.attempts = MaxRefreshAttempts
		default:
			s.attempts = attempts
		}
	}
}

func NewCacheService(repo ports.EnvelopeRepository, feed ports.ObjectFeed, clock clockwork.Clock, logger *slog.Logger, opts ...CacheOption) *CacheService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &CacheService{
		repo:     repo,
		feed:     feed,
		clock:    clock,
		logger:   logger,
		attempts: DefaultRefreshAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CacheStatus struct {
	Present     bool
	Fresh       bool
	GeneratedAt time.Time
	Objects     int
}

// Load returns the persisted envelope. A missing or malformed cache is reported as
// absent (false) without an error.
func (s *CacheService) Load(ctx context.Context) (domain.Envelope, bool, error) {
	envelope, err := s.repo.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCacheMissing):
			s.logger.Debug("object cache absent")
			return domain.Envelope{}, false, nil
		case errors.Is(err, domain.ErrCacheFormat):
			s.logger.Warn("object cache unreadable, treating as absent", slog.Any("error", err))
			return domain.Envelope{}, false, nil
		default:
			return domain.Envelope{}, false, fmt.Errorf("load object cache: %w", err)
		}
	}

	if err := envelope.Validate(); err != nil {
		s.logger.Warn("object cache invalid, treating as absent", slog.Any("error", err))
		return domain.Envelope{}, false, nil
	}

	return envelope, true, nil
}

func (s *CacheService) IsFresh(envelope domain.Envelope, now time.Time) bool {
	return envelope.IsFresh(now)
}

// Refresh fetches the last LookbackDays of the feed, flattens it in date order and
// overwrites the persisted envelope.
func (s *CacheService) Refresh(ctx context.Context) (domain.Envelope, error) {
	now := s.clock.Now()
	end := now
	start := now.AddDate(0, 0, -(LookbackDays - 1))

	grouped, err := s.feed.Feed(ctx, start, end)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("fetch object feed: %w", err)
	}

	objects := flattenFeed(grouped)
	if len(objects) == 0 {
		return domain.Envelope{}, domain.ErrEmptyFeed
	}

	envelope := domain.NewEnvelope(now, objects)
	if err := s.repo.Save(ctx, envelope); err != nil {
		return domain.Envelope{}, fmt.Errorf("save object cache: %w", err)
	}

	s.logger.Info("object cache refreshed",
		slog.Int("objects", len(objects)),
		slog.String("start", start.Format(time.DateOnly)),
		slog.String("end", end.Format(time.DateOnly)),
	)

	return envelope, nil
}

// EnsureFresh returns the cached envelope when it was generated today and refreshes
// it otherwise. Only an empty feed is retried, up to the configured attempt count.
func (s *CacheService) EnsureFresh(ctx context.Context) (domain.Envelope, error) {
	envelope, ok, err := s.Load(ctx)
	if err != nil {
		return domain.Envelope{}, err
	}
	if ok && envelope.IsFresh(s.clock.Now()) {
		return envelope, nil
	}
	if ok {
		s.logger.Info("object cache stale, refreshing", slog.Time("generated_at", envelope.GeneratedAt))
	}

	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		refreshed, err := s.Refresh(ctx)
		if err == nil {
			return refreshed, nil
		}
		if !errors.Is(err, domain.ErrEmptyFeed) {
			return domain.Envelope{}, err
		}

		lastErr = err
		s.logger.Warn("object feed empty", slog.Int("attempt", attempt), slog.Int("max_attempts", s.attempts))
	}

	return domain.Envelope{}, fmt.Errorf("%w after %d attempt(s): %w", domain.ErrRefreshExhausted, s.attempts, lastErr)
}

func (s *CacheService) Status(ctx context.Context) (CacheStatus, error) {
	envelope, ok, err := s.Load(ctx)
	if err != nil {
		return CacheStatus{}, err
	}
	if !ok {
		return CacheStatus{}, nil
	}

	return CacheStatus{
		Present:     true,
		Fresh:       envelope.IsFresh(s.clock.Now()),
		GeneratedAt: envelope.GeneratedAt,
		Objects:     len(envelope.Objects),
	}, nil
}

func flattenFeed(grouped map[string][]domain.Asteroid) []domain.Asteroid {
	dates := make([]string, 0, len(grouped))
	total := 0
	for date, objects := range grouped {
		dates = append(dates, date)
		total += len(objects)
	}
	sort.Strings(dates)

	flattened := make([]domain.Asteroid, 0, total)
	for _, date := range dates {
		flattened = append(flattened, grouped[date]...)
	}

	return flattened
}
