package impact

import (
	"fmt"

	"github.com/bnema/astro-impact/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	chicxulubWikipedia  = "https://en.wikipedia.org/wiki/Chicxulub_crater"
	chicxulubKurzgesagt = "https://www.youtube.com/watch?v=dFCbJmgeHmA"
)

func renderView(result domain.ImpactResult, opts RenderOptions, s styles) string {
	blocks := []string{
		energySection(result, s),
		comparisonSection(result, s),
		referenceSection(s),
	}
	if !result.ExtinctionEvent() {
		blocks = append(blocks, consequenceSection(result, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func energySection(r domain.ImpactResult, s styles) string {
	lines := []string{
		s.section.Render("Impact energy"),
		s.detail.Render(fmt.Sprintf("- The impact of %s on %s releases %s joules.", r.Asteroid.Name, r.Country.Name, Intword(r.EnergyJ))),
	}

	if r.HiroshimaAsPercentage() {
		lines = append(lines, s.detail.Render(fmt.Sprintf("- That is about %.2f%% of the energy of the Hiroshima atomic bomb.", r.HiroshimaEquivalents*100)))
	} else {
		lines = append(lines, s.detail.Render(fmt.Sprintf("- That is about %s × the energy of the Hiroshima atomic bomb.", Intword(r.HiroshimaEquivalents))))
	}
	lines = append(lines, s.detail.Render(fmt.Sprintf("- Roughly %.2f megatons of TNT.", r.MegatonsTNT)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func comparisonSection(r domain.ImpactResult, s styles) string {
	lines := []string{s.section.Render("Comparison with historical impacts")}

	switch r.Severity {
	case domain.SeverityExtinction:
		lines = append(lines,
			s.warning.Render(fmt.Sprintf("- This object is %.2f× more powerful than the Chicxulub impact (which wiped out the dinosaurs).", r.ExtinctionRatio)),
			s.warning.Render("- This would cause a global extinction event."),
		)
	case domain.SeverityContinental:
		lines = append(lines,
			s.notice.Render(fmt.Sprintf("- This impact carries about %.2f%% of the energy of the Chicxulub event.", r.ExtinctionRatio*100)),
			s.notice.Render("- Severe consequences, possibly continental damage."),
		)
	default:
		lines = append(lines, s.detail.Render("- This impact is smaller than Chicxulub, but still devastating on a regional scale."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func referenceSection(s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.section.Render("Want to know more about the Chicxulub impact?"),
		s.link.Render("Wikipedia: "+chicxulubWikipedia),
		s.link.Render("Kurzgesagt video: "+chicxulubKurzgesagt),
	)
}

func consequenceSection(r domain.ImpactResult, opts RenderOptions, s styles) string {
	lines := []string{s.section.Render("Consequences for the affected area")}

	if r.Seismic != nil {
		lines = append(lines, s.detail.Render(fmt.Sprintf("- The impact matches an earthquake of magnitude %.2f on the Richter scale.", r.Seismic.Magnitude)))
		if r.Seismic.Band != nil {
			lines = append(lines,
				s.detail.Render("- Category: "+r.Seismic.Band.Label),
				s.detail.Render("- Effect: "+r.Seismic.Band.Effect),
			)
		} else {
			lines = append(lines, s.warning.Render("- No seismic category covers this magnitude. The reference scale is incomplete."))
		}
	}
	if opts.SimErr != nil {
		lines = append(lines, s.warning.Render("- Reference data problem: "+opts.SimErr.Error()))
	}

	if r.Damage != nil {
		lines = append(lines, damageLines(r, *r.Damage, s)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func damageLines(r domain.ImpactResult, d domain.Damage, s styles) []string {
	area := s.notice.Render(fmt.Sprintf("- Total destroyed area: %s km²", Intword(d.DestroyedAreaKm2)))

	if !d.CountryDestroyed {
		return []string{
			s.notice.Render(fmt.Sprintf("- About %.2f%% of %s would be destroyed.", d.DestroyedFraction*100, r.Country.Name)),
			area,
			s.notice.Render(fmt.Sprintf("- Expected casualties: %s people", Intword(d.Casualties))),
		}
	}

	lines := []string{
		s.warning.Render(fmt.Sprintf("- The entire country of %s would be destroyed!", r.Country.Name)),
		area,
	}
	if d.EarthSurfaceBelowFloor() {
		lines = append(lines, s.notice.Render("- That is less than 0.01% of the Earth's surface."))
	} else {
		lines = append(lines, s.notice.Render(fmt.Sprintf("- That is %.2f%% of the Earth's surface.", d.EarthSurfacePercent)))
	}
	if d.WorldPopulationClamp {
		lines = append(lines, s.warning.Render(fmt.Sprintf("- Expected casualties: practically the entire world population (%s people)", Intword(domain.WorldPopulation))))
	} else {
		lines = append(lines, s.notice.Render(fmt.Sprintf("- Expected casualties: %s people", Intword(d.Casualties))))
	}

	return lines
}
