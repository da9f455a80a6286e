package ports

import (
	"context"

	"github.com/bnema/astro-impact/internal/domain"
)

type CountryRegistry interface {
	Countries(ctx context.Context) ([]domain.Country, error)
}
