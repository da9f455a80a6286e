package ports

import (
	"context"
	"time"

	"github.com/bnema/astro-impact/internal/domain"
)

// ObjectFeed returns near-Earth objects grouped by close-approach date (YYYY-MM-DD).
type ObjectFeed interface {
	Feed(ctx context.Context, start, end time.Time) (map[string][]domain.Asteroid, error)
}
