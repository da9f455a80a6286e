package impact

import (
	"fmt"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// CountryDataNotice is shown before a country is picked.
const CountryDataNotice = "Note: some country data, such as population, may be outdated (source: REST Countries API)."

func AsteroidSummary(a domain.Asteroid, theme domain.Theme) string {
	s := newStyles(theme)
	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Asteroid selected:"),
		s.notice.Render("  Name: "+a.Name),
		s.notice.Render("  ID: "+string(a.ID)),
		s.notice.Render(fmt.Sprintf("  Diameter: %.0f–%.0f meters", a.DiameterMinM, a.DiameterMaxM)),
		s.notice.Render(fmt.Sprintf("  Speed: %s km/h", humanize.Comma(int64(a.VelocityKmH)))),
		s.notice.Render("  Hazardous: "+a.HazardLabel()),
	)
}

func CountrySummary(c domain.Country, theme domain.Theme) string {
	s := newStyles(theme)
	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Country selected:"),
		s.notice.Render("  Name: "+c.Name),
		s.notice.Render(fmt.Sprintf("  Population: %s people", Intword(float64(c.Population)))),
		s.notice.Render(fmt.Sprintf("  Area: %s km²", humanize.Comma(int64(c.AreaKm2)))),
		s.notice.Render(fmt.Sprintf("  Population density: %d people/km²", int64(c.Density))),
	)
}
