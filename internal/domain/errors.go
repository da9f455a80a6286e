package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAsteroidNotFound    = errors.New("asteroid not found")
	ErrCountryNotFound     = errors.New("country not found")
	ErrCacheMissing        = errors.New("cache not found")
	ErrCacheFormat         = errors.New("cache format invalid")
	ErrEmptyFeed           = errors.New("object feed returned no objects")
	ErrRefreshExhausted    = errors.New("cache refresh attempts exhausted")
	ErrSelectionIncomplete = errors.New("asteroid and country must both be selected")
	ErrNoSeismicBand       = errors.New("no seismic band matches magnitude")
	ErrUnknownTheme        = errors.New("unknown theme")

	ErrProviderUnauthorized = errors.New("provider rejected credentials")
	ErrProviderStatus       = errors.New("provider returned non-success status")
	ErrProviderUnavailable  = errors.New("provider unavailable")
)

// ProviderError describes a failed call to an upstream data source.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("%s: status %d", e.Provider, e.StatusCode)
	}

	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// InvariantError marks a defect in reference data rather than a user mistake.
type InvariantError struct {
	Invariant string
	Err       error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated (%s): %v", e.Invariant, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func IsInvariantViolation(err error) bool {
	var invariant *InvariantError
	return errors.As(err, &invariant)
}
