package application

import (
	"context"
	"fmt"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports"
)

type ThemeService struct {
	settings ports.SettingsRepository
}

func NewThemeService(settings ports.SettingsRepository) *ThemeService {
	return &ThemeService{settings: settings}
}

func (s *ThemeService) Current(ctx context.Context) (domain.Theme, error) {
	theme, err := s.settings.Theme(ctx)
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	if theme == "" {
		return domain.ThemeDyslexiaFriendly, nil
	}

	return theme, nil
}

func (s *ThemeService) Set(ctx context.Context, raw string) (domain.Theme, error) {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return "", err
	}

	if err := s.settings.SaveTheme(ctx, theme); err != nil {
		return "", fmt.Errorf("save theme: %w", err)
	}

	return theme, nil
}

func (s *ThemeService) Available() []domain.Theme {
	themes := make([]domain.Theme, len(domain.Themes))
	copy(themes, domain.Themes)
	return themes
}
