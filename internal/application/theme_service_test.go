package application

import (
	"context"
	"testing"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/bnema/astro-impact/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestThemeServiceDefaultsWhenUnset(t *testing.T) {
	settings := mocks.NewMockSettingsRepository(t)
	settings.EXPECT().Theme(mock.Anything).Return(domain.Theme(""), nil).Once()

	theme, err := NewThemeService(settings).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDyslexiaFriendly, theme)
}

func TestThemeServiceSetValidatesBeforeSaving(t *testing.T) {
	settings := mocks.NewMockSettingsRepository(t)
	service := NewThemeService(settings)

	_, err := service.Set(context.Background(), "neon")
	require.ErrorIs(t, err, domain.ErrUnknownTheme)

	settings.EXPECT().SaveTheme(mock.Anything, domain.ThemeOcean).Return(nil).Once()
	theme, err := service.Set(context.Background(), "Ocean")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeOcean, theme)
}
