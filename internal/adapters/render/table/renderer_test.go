package table

import (
	"strings"
	"testing"

	"github.com/bnema/astro-impact/internal/browser"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderPageIncludesRowsAndFooter(t *testing.T) {
	rendered := NewRenderer(domain.ThemeDefault).RenderPage(browser.Page{
		Title:   "Near-earth objects",
		Headers: []string{"ID", "Name"},
		Rows:    [][]string{{"3542519", "(2010 PK9)"}, {"54016", "(2020 GB)"}},
		Number:  2,
		Total:   5,
	})

	assert.Contains(t, rendered, "ID")
	assert.Contains(t, rendered, "(2010 PK9)")
	assert.Contains(t, rendered, "54016")
	assert.Contains(t, rendered, "Page 2 of 5")
}

func TestEveryThemeHasAPalette(t *testing.T) {
	for _, theme := range domain.Themes {
		_, ok := palettes[theme]
		assert.True(t, ok, "theme %s has no palette", theme)

		rendered := NewRenderer(theme).Table([]string{"Country"}, [][]string{{"Peru"}})
		assert.Contains(t, rendered, "Peru", "theme %s", theme)
	}
}

func TestMonochromeUsesASCIIBorder(t *testing.T) {
	rendered := NewRenderer(domain.ThemeMonochrome).Table([]string{"A"}, [][]string{{"1"}})
	assert.True(t, strings.Contains(rendered, "+"), rendered)
}

func TestUnknownThemeFallsBackToDefault(t *testing.T) {
	assert.Equal(t, PaletteFor(domain.ThemeDefault).Border, PaletteFor(domain.Theme("neon")).Border)
}
