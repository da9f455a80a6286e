package cmd

import (
	"strconv"

	"github.com/bnema/astro-impact/internal/browser"
	"github.com/bnema/astro-impact/internal/domain"
	"github.com/dustin/go-humanize"
)

const (
	asteroidTableTitle = "Near-earth objects"
	countryTableTitle  = "Countries overview"
)

func formatFloat(value float64, digits int) string {
	return strconv.FormatFloat(value, 'f', digits, 64)
}

func asteroidDataset(asteroids []domain.Asteroid) browser.Dataset[domain.Asteroid] {
	return browser.Dataset[domain.Asteroid]{
		Title: asteroidTableTitle,
		Columns: []browser.Column[domain.Asteroid]{
			{
				Title:   "ID",
				Cell:    func(a domain.Asteroid) string { return string(a.ID) },
				Compare: browser.By(func(a domain.Asteroid) string { return string(a.ID) }),
			},
			{
				Title: "Name",
				Cell:  func(a domain.Asteroid) string { return a.Name },
			},
			{
				Title:   "Min diameter (m)",
				Cell:    func(a domain.Asteroid) string { return formatFloat(a.DiameterMinM, 1) },
				Compare: browser.By(func(a domain.Asteroid) float64 { return a.DiameterMinM }),
			},
			{
				Title:   "Max diameter (m)",
				Cell:    func(a domain.Asteroid) string { return formatFloat(a.DiameterMaxM, 1) },
				Compare: browser.By(func(a domain.Asteroid) float64 { return a.DiameterMaxM }),
			},
			{
				Title:   "Speed (km/h)",
				Cell:    func(a domain.Asteroid) string { return humanize.Comma(int64(a.VelocityKmH)) },
				Compare: browser.By(func(a domain.Asteroid) float64 { return a.VelocityKmH }),
			},
			{
				Title:   "Distance (km)",
				Cell:    func(a domain.Asteroid) string { return humanize.Comma(int64(a.MissDistanceKm)) },
				Compare: browser.By(func(a domain.Asteroid) float64 { return a.MissDistanceKm }),
			},
			{
				Title:   "Hazardous?",
				Cell:    func(a domain.Asteroid) string { return a.HazardLabel() },
				Compare: browser.ByBool(func(a domain.Asteroid) bool { return a.Hazardous }),
				Hazard:  true,
			},
		},
		Rows: asteroids,
	}
}

func countryDataset(countries []domain.Country) browser.Dataset[domain.Country] {
	return browser.Dataset[domain.Country]{
		Title: countryTableTitle,
		Columns: []browser.Column[domain.Country]{
			{
				Title: "Country",
				Cell:  func(c domain.Country) string { return c.Name },
			},
			{
				Title:   "Population",
				Cell:    func(c domain.Country) string { return humanize.Comma(c.Population) },
				Compare: browser.By(func(c domain.Country) int64 { return c.Population }),
			},
			{
				Title:   "Area (km²)",
				Cell:    func(c domain.Country) string { return humanize.Commaf(c.AreaKm2) },
				Compare: browser.By(func(c domain.Country) float64 { return c.AreaKm2 }),
			},
			{
				Title:   "Density (p/km²)",
				Cell:    func(c domain.Country) string { return formatFloat(c.Density, 0) },
				Compare: browser.By(func(c domain.Country) float64 { return c.Density }),
			},
		},
		Rows: countries,
	}
}
