package ports

import (
	"context"

	"github.com/bnema/astro-impact/internal/domain"
)

type SettingsRepository interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
