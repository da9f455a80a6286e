package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 14, 9, 30, 45, 0, time.UTC)

func TestCacheServiceLoadTreatsMissingAndMalformedAsAbsent(t *testing.T) {
	for _, loadErr := range []error{
		domain.ErrCacheMissing,
		fmt.Errorf("decode cache file: %w", domain.ErrCacheFormat),
	} {
		repo := mocks.NewMockEnvelopeRepository(t)
		feed := mocks.NewMockObjectFeed(t)
		service := NewCacheService(repo, feed, clockwork.NewFakeClockAt(testNow), nil)

		repo.EXPECT().Load(mock.Anything).Return(domain.Envelope{}, loadErr).Once()

		_, ok, err := service.Load(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestCacheServiceLoadTreatsEmptyEnvelopeAsAbsent(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	service := NewCacheService(repo, mocks.NewMockObjectFeed(t), clockwork.NewFakeClockAt(testNow), nil)

	repo.EXPECT().Load(mock.Anything).Return(domain.NewEnvelope(testNow, nil), nil).Once()

	_, ok, err := service.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheServiceLoadSurfacesIOErrors(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	service := NewCacheService(repo, mocks.NewMockObjectFeed(t), clockwork.NewFakeClockAt(testNow), nil)

	repo.EXPECT().Load(mock.Anything).Return(domain.Envelope{}, errors.New("permission denied")).Once()

	_, _, err := service.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "permission denied")
}

func TestCacheServiceEnsureFreshReturnsCachedEnvelopeFromToday(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	feed := mocks.NewMockObjectFeed(t)
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewCacheService(repo, feed, clock, nil)

	cached := domain.NewEnvelope(testNow.Add(-9*time.Hour), []domain.Asteroid{{ID: "1"}})
	repo.EXPECT().Load(mock.Anything).Return(cached, nil).Once()

	got, err := service.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCacheServiceEnsureFreshRefreshesStaleEnvelope(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	feed := mocks.NewMockObjectFeed(t)
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewCacheService(repo, feed, clock, nil)

	stale := domain.NewEnvelope(testNow.AddDate(0, 0, -1), []domain.Asteroid{{ID: "old"}})
	repo.EXPECT().Load(mock.Anything).Return(stale, nil).Once()
	feed.EXPECT().Feed(mock.Anything, testNow.AddDate(0, 0, -6), testNow).Return(map[string][]domain.Asteroid{
		"2026-10-14": {{ID: "c"}},
		"2026-10-08": {{ID: "a"}, {ID: "b"}},
	}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(saved domain.Envelope) bool {
		return len(saved.Objects) == 3 && saved.GeneratedAt.Equal(testNow.Truncate(time.Minute))
	})).Return(nil).Once()

	got, err := service.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsFresh(testNow))
	assert.Equal(t, []domain.Asteroid{{ID: "a"}, {ID: "b"}, {ID: "c"}}, got.Objects)
}

func TestCacheServiceEnsureFreshBuildsMissingCache(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	feed := mocks.NewMockObjectFeed(t)
	service := NewCacheService(repo, feed, clockwork.NewFakeClockAt(testNow), nil)

	repo.EXPECT().Load(mock.Anything).Return(domain.Envelope{}, domain.ErrCacheMissing).Once()
	feed.EXPECT().Feed(mock.Anything, mock.Anything, mock.Anything).Return(map[string][]domain.Asteroid{
		"2026-10-14": {{ID: "1"}},
	}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	got, err := service.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Objects, 1)
}

func TestCacheServiceEnsureFreshPropagatesProviderErrorWithoutRetry(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	feed := mocks.NewMockObjectFeed(t)
	service := NewCacheService(repo, feed, clockwork.NewFakeClockAt(testNow), nil, WithRefreshAttempts(3))

	providerErr := &domain.ProviderError{Provider: "neows", StatusCode: 403, Err: domain.ErrProviderUnauthorized}
	repo.EXPECT().Load(mock.Anything).Return(domain.Envelope{}, domain.ErrCacheMissing).Once()
	feed.EXPECT().Feed(mock.Anything, mock.Anything, mock.Anything).Return(nil, providerErr).Once()

	_, err := service.EnsureFresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderUnauthorized)
	feed.AssertNumberOfCalls(t, "Feed", 1)
}

func TestCacheServiceEnsureFreshStopsAfterBoundedEmptyRefreshes(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	feed := mocks.NewMockObjectFeed(t)
	service := NewCacheService(repo, feed, clockwork.NewFakeClockAt(testNow), nil, WithRefreshAttempts(2))

	repo.EXPECT().Load(mock.Anything).Return(domain.Envelope{}, domain.ErrCacheMissing).Once()
	feed.EXPECT().Feed(mock.Anything, mock.Anything, mock.Anything).Return(map[string][]domain.Asteroid{}, nil).Times(2)

	_, err := service.EnsureFresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRefreshExhausted)
	assert.ErrorIs(t, err, domain.ErrEmptyFeed)
}

func TestCacheServiceRefreshSurfacesDiskErrors(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	feed := mocks.NewMockObjectFeed(t)
	service := NewCacheService(repo, feed, clockwork.NewFakeClockAt(testNow), nil)

	feed.EXPECT().Feed(mock.Anything, mock.Anything, mock.Anything).Return(map[string][]domain.Asteroid{
		"2026-10-14": {{ID: "1"}},
	}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only file system")).Once()

	_, err := service.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "save object cache")
}

func TestCacheServiceRefreshedEnvelopeTurnsStaleAfterMidnight(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	feed := mocks.NewMockObjectFeed(t)
	lateEvening := time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(lateEvening)
	service := NewCacheService(repo, feed, clock, nil)

	feed.EXPECT().Feed(mock.Anything, mock.Anything, mock.Anything).Return(map[string][]domain.Asteroid{
		"2026-10-14": {{ID: "1"}},
	}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	envelope, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, service.IsFresh(envelope, clock.Now()))

	clock.Advance(time.Minute)
	assert.False(t, service.IsFresh(envelope, clock.Now()))
}

func TestCacheServiceStatus(t *testing.T) {
	repo := mocks.NewMockEnvelopeRepository(t)
	service := NewCacheService(repo, mocks.NewMockObjectFeed(t), clockwork.NewFakeClockAt(testNow), nil)

	envelope := domain.NewEnvelope(testNow, []domain.Asteroid{{ID: "1"}, {ID: "2"}})
	repo.EXPECT().Load(mock.Anything).Return(envelope, nil).Once()

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CacheStatus{Present: true, Fresh: true, GeneratedAt: envelope.GeneratedAt, Objects: 2}, status)
}

func TestWithRefreshAttemptsClamps(t *testing.T) {
	assert.Equal(t, 1, NewCacheService(nil, nil, nil, nil, WithRefreshAttempts(0)).attempts)
	assert.Equal(t, MaxRefreshAttempts, NewCacheService(nil, nil, nil, nil, WithRefreshAttempts(99)).attempts)
	assert.Equal(t, 3, NewCacheService(nil, nil, nil, nil, WithRefreshAttempts(3)).attempts)
}
