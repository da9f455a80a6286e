package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeFreshnessAtMidnight(t *testing.T) {
	loc := time.FixedZone("CET", 3600)

	tests := []struct {
		name      string
		generated time.Time
		now       time.Time
		want      bool
	}{
		{
			name:      "one minute before midnight is stale one minute later",
			generated: time.Date(2026, 10, 14, 23, 59, 0, 0, loc),
			now:       time.Date(2026, 10, 15, 0, 0, 0, 0, loc),
			want:      false,
		},
		{
			name:      "generated at midnight fresh until end of day",
			generated: time.Date(2026, 10, 14, 0, 0, 0, 0, loc),
			now:       time.Date(2026, 10, 14, 23, 59, 59, 0, loc),
			want:      true,
		},
		{
			name:      "same instant",
			generated: time.Date(2026, 10, 14, 12, 0, 0, 0, loc),
			now:       time.Date(2026, 10, 14, 12, 0, 0, 0, loc),
			want:      true,
		},
		{
			name:      "same clock day different month",
			generated: time.Date(2026, 9, 14, 12, 0, 0, 0, loc),
			now:       time.Date(2026, 10, 14, 12, 0, 0, 0, loc),
			want:      false,
		},
		{
			name:      "now expressed in another zone compares in envelope zone",
			generated: time.Date(2026, 10, 14, 0, 30, 0, 0, loc),
			now:       time.Date(2026, 10, 13, 23, 45, 0, 0, time.UTC),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := NewEnvelope(tt.generated, []Asteroid{{ID: "1"}})
			assert.Equal(t, tt.want, envelope.IsFresh(tt.now))
		})
	}
}

func TestZeroEnvelopeIsNeverFresh(t *testing.T) {
	assert.False(t, Envelope{}.IsFresh(time.Now()))
}

func TestNewEnvelopeTruncatesToMinute(t *testing.T) {
	envelope := NewEnvelope(time.Date(2026, 10, 14, 9, 41, 37, 500, time.UTC), nil)

	assert.Equal(t, time.Date(2026, 10, 14, 9, 41, 0, 0, time.UTC), envelope.GeneratedAt)
}

func TestEnvelopeValidate(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 41, 0, 0, time.UTC)

	require.NoError(t, NewEnvelope(now, []Asteroid{{ID: "1"}}).Validate())

	err := NewEnvelope(now, nil).Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCacheFormat))

	err = Envelope{Objects: []Asteroid{{ID: "1"}}}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCacheFormat))
}

func TestTimestampRoundTrip(t *testing.T) {
	stamp := time.Date(2026, 3, 7, 8, 5, 0, 0, time.Local)

	raw := FormatTimestamp(stamp)
	assert.Equal(t, "070320260805", raw)

	parsed, err := ParseTimestamp(raw, time.Local)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(parsed))
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	_, err := ParseTimestamp("2026-03-07", time.UTC)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCacheFormat))
}

func TestNewCountryDerivesRoundedDensity(t *testing.T) {
	country := NewCountry(" Netherlands ", 17_400_000, 41_850)

	assert.Equal(t, "Netherlands", country.Name)
	assert.Equal(t, 416.0, country.Density)
	assert.Zero(t, NewCountry("Nowhere", 10, 0).Density)
}

func TestFindCountryIsCaseInsensitive(t *testing.T) {
	countries := []Country{NewCountry("Netherlands", 1, 1), NewCountry("New Zealand", 1, 1)}

	got, err := FindCountry(countries, "new zealand")
	require.NoError(t, err)
	assert.Equal(t, "New Zealand", got.Name)

	_, err = FindCountry(countries, "Atlantis")
	assert.ErrorIs(t, err, ErrCountryNotFound)

	_, err = FindCountry(countries, "  ")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestFindAsteroid(t *testing.T) {
	asteroids := []Asteroid{{ID: "3542519", Name: "(2010 PK9)"}, {ID: "54016112", Name: "(2020 JG)"}}

	got, err := FindAsteroid(asteroids, "54016112")
	require.NoError(t, err)
	assert.Equal(t, "(2020 JG)", got.Name)

	_, err = FindAsteroid(asteroids, "nope")
	assert.ErrorIs(t, err, ErrAsteroidNotFound)
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme("Dyslexia-Friendly")
	require.NoError(t, err)
	assert.Equal(t, ThemeDyslexiaFriendly, theme)
	assert.Equal(t, "Dyslexia Friendly", theme.Label())

	_, err = ParseTheme("neon")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestProviderErrorUnwraps(t *testing.T) {
	err := &ProviderError{Provider: "neows", StatusCode: 403, Body: "API_KEY_MISSING", Err: ErrProviderUnauthorized}

	assert.ErrorIs(t, err, ErrProviderUnauthorized)
	assert.Equal(t, "neows: status 403: API_KEY_MISSING", err.Error())
}
