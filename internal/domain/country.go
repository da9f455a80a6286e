package domain

import (
	"math"
	"strings"
)

type Country struct {
	Name       string
	Population int64
	AreaKm2    float64
	Density    float64
}

// NewCountry derives the population density, rounded to whole people per km².
func NewCountry(name string, population int64, areaKm2 float64) Country {
	c := Country{
		Name:       strings.TrimSpace(name),
		Population: population,
		AreaKm2:    areaKm2,
	}
	if areaKm2 > 0 {
		c.Density = math.Round(float64(population) / areaKm2)
	}

	return c
}

func FindCountry(countries []Country, name string) (Country, error) {
	wanted := strings.TrimSpace(name)
	if wanted == "" {
		return Country{}, ErrCountryNotFound
	}

	for _, country := range countries {
		if strings.EqualFold(country.Name, wanted) {
			return country, nil
		}
	}

	return Country{}, ErrCountryNotFound
}
