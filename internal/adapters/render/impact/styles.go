package impact

import (
	"github.com/bnema/astro-impact/internal/adapters/render/table"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	detail  lipgloss.Style
	warning lipgloss.Style
	notice  lipgloss.Style
	link    lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	p := table.PaletteFor(theme)
	return styles{
		title:   p.Title,
		section: p.Section,
		detail:  p.Detail,
		warning: p.Warning,
		notice:  p.Notice,
		link:    p.Link,
	}
}
