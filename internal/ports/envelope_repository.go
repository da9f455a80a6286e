package ports

import (
	"context"

	"github.com/bnema/astro-impact/internal/domain"
)

// EnvelopeRepository persists the cached object feed. Load returns
// domain.ErrCacheMissing when nothing is stored and domain.ErrCacheFormat when the
// stored document cannot be decoded.
type EnvelopeRepository interface {
	Load(ctx context.Context) (domain.Envelope, error)
	Save(ctx context.Context, envelope domain.Envelope) error
}
