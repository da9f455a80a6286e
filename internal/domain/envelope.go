package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the fixed-width day-month-year-hour-minute stamp stored with the cache.
const TimestampLayout = "020120061504"

type Envelope struct {
	GeneratedAt time.Time
	Objects     []Asteroid
}

func NewEnvelope(now time.Time, objects []Asteroid) Envelope {
	return Envelope{
		GeneratedAt: now.Truncate(time.Minute),
		Objects:     objects,
	}
}

// IsFresh reports whether the envelope was generated on the same calendar day as now.
// The comparison happens in the envelope's location.
func (e Envelope) IsFresh(now time.Time) bool {
	if e.GeneratedAt.IsZero() {
		return false
	}

	yearA, monthA, dayA := e.GeneratedAt.Date()
	yearB, monthB, dayB := now.In(e.GeneratedAt.Location()).Date()

	return yearA == yearB && monthA == monthB && dayA == dayB
}

func (e Envelope) Validate() error {
	if e.GeneratedAt.IsZero() {
		return fmt.Errorf("%w: missing generation timestamp", ErrCacheFormat)
	}
	if len(e.Objects) == 0 {
		return fmt.Errorf("%w: no objects", ErrCacheFormat)
	}

	return nil
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	parsed, err := time.ParseInLocation(TimestampLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q: %v", ErrCacheFormat, raw, err)
	}

	return parsed, nil
}
