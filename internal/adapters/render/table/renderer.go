// Package table renders browser pages with lipgloss tables in the selected theme.
package table

import (
	"fmt"

	"github.com/bnema/astro-impact/internal/browser"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Renderer struct {
	palette Palette
}

var _ browser.Renderer = (*Renderer)(nil)

func NewRenderer(theme domain.Theme) *Renderer {
	return &Renderer{palette: PaletteFor(theme)}
}

func (r *Renderer) RenderPage(page browser.Page) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.Table(page.Headers, page.Rows),
		r.palette.Footer.Render(fmt.Sprintf("Page %d of %d", page.Number, page.Total)),
	)
}

// Table renders rows without pagination.
func (r *Renderer) Table(headers []string, rows [][]string) string {
	p := r.palette

	t := table.New().
		Border(p.Border).
		BorderStyle(p.Frame).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.Header
			case row%2 == 0:
				return p.EvenRow
			default:
				return p.OddRow
			}
		})

	return t.String()
}
