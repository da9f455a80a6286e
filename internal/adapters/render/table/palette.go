package table

import (
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of styles a theme applies to tables and reports.
type Palette struct {
	Border  lipgloss.Border
	Frame   lipgloss.Style
	Header  lipgloss.Style
	OddRow  lipgloss.Style
	EvenRow lipgloss.Style
	Title   lipgloss.Style
	Footer  lipgloss.Style
	Section lipgloss.Style
	Detail  lipgloss.Style
	Warning lipgloss.Style
	Notice  lipgloss.Style
	Link    lipgloss.Style
}

var palettes = map[domain.Theme]func() Palette{
	domain.ThemeDefault:          defaultPalette,
	domain.ThemeDyslexiaFriendly: dyslexiaFriendlyPalette,
	domain.ThemeOcean:            oceanPalette,
	domain.ThemeEarth:            earthPalette,
	domain.ThemeHighContrast:     highContrastPalette,
	domain.ThemeMonochrome:       monochromePalette,
}

// PaletteFor returns the palette for theme, falling back to the default palette.
func PaletteFor(theme domain.Theme) Palette {
	build, ok := palettes[theme]
	if !ok {
		build = defaultPalette
	}
	return build()
}

func cell() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1)
}

func defaultPalette() Palette {
	return Palette{
		Border:  lipgloss.NormalBorder(),
		Frame:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Header:  cell().Bold(true),
		OddRow:  cell(),
		EvenRow: cell(),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")).MarginTop(1),
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Italic(true),
	}
}

// Light background tint, wide padding and no italics.
func dyslexiaFriendlyPalette() Palette {
	p := defaultPalette()
	p.Border = lipgloss.RoundedBorder()
	p.Frame = lipgloss.NewStyle().Foreground(lipgloss.Color("137"))
	p.Header = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("236")).Background(lipgloss.Color("223"))
	p.OddRow = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("236")).Background(lipgloss.Color("230"))
	p.EvenRow = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("236")).Background(lipgloss.Color("224"))
	p.Link = lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Underline(true)
	return p
}

func oceanPalette() Palette {
	p := defaultPalette()
	p.Border = lipgloss.RoundedBorder()
	p.Frame = lipgloss.NewStyle().Foreground(lipgloss.Color("31"))
	p.Header = cell().Bold(true).Foreground(lipgloss.Color("45"))
	p.OddRow = cell().Foreground(lipgloss.Color("153"))
	p.EvenRow = cell().Foreground(lipgloss.Color("117"))
	p.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	return p
}

func earthPalette() Palette {
	p := defaultPalette()
	p.Frame = lipgloss.NewStyle().Foreground(lipgloss.Color("94"))
	p.Header = cell().Bold(true).Foreground(lipgloss.Color("142"))
	p.OddRow = cell().Foreground(lipgloss.Color("187"))
	p.EvenRow = cell().Foreground(lipgloss.Color("144"))
	p.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("136"))
	p.Section = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130")).MarginTop(1)
	return p
}

func highContrastPalette() Palette {
	p := defaultPalette()
	p.Border = lipgloss.ThickBorder()
	p.Frame = lipgloss.NewStyle().Foreground(lipgloss.Color("231"))
	p.Header = cell().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("226"))
	p.OddRow = cell().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("16"))
	p.EvenRow = cell().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("16"))
	p.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	p.Detail = lipgloss.NewStyle().Foreground(lipgloss.Color("231"))
	p.Warning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	return p
}

func monochromePalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		Border:  lipgloss.ASCIIBorder(),
		Frame:   plain,
		Header:  cell().Bold(true),
		OddRow:  cell(),
		EvenRow: cell(),
		Title:   plain.Bold(true),
		Footer:  plain,
		Section: plain.Bold(true).MarginTop(1),
		Detail:  plain,
		Warning: plain.Bold(true),
		Notice:  plain,
		Link:    plain.Underline(true),
	}
}
