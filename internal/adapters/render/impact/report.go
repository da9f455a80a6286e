package impact

import "github.com/bnema/astro-impact/internal/domain"

// Report is the machine-readable form of an impact result.
type Report struct {
	Asteroid             ReportAsteroid `json:"asteroid" yaml:"asteroid"`
	Country              ReportCountry  `json:"country" yaml:"country"`
	MassKg               float64        `json:"mass_kg" yaml:"mass_kg"`
	EnergyJ              float64        `json:"energy_joules" yaml:"energy_joules"`
	MegatonsTNT          float64        `json:"megatons_tnt" yaml:"megatons_tnt"`
	HiroshimaEquivalents float64        `json:"hiroshima_equivalents" yaml:"hiroshima_equivalents"`
	ChicxulubRatio       float64        `json:"chicxulub_ratio" yaml:"chicxulub_ratio"`
	Severity             string         `json:"severity" yaml:"severity"`
	Seismic              *ReportSeismic `json:"seismic,omitempty" yaml:"seismic,omitempty"`
	Damage               *ReportDamage  `json:"damage,omitempty" yaml:"damage,omitempty"`
	Error                string         `json:"error,omitempty" yaml:"error,omitempty"`
}

type ReportAsteroid struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	DiameterMin float64 `json:"diameter_min_m" yaml:"diameter_min_m"`
	DiameterMax float64 `json:"diameter_max_m" yaml:"diameter_max_m"`
	VelocityKmS float64 `json:"velocity_km_s" yaml:"velocity_km_s"`
	Hazardous   bool    `json:"hazardous" yaml:"hazardous"`
}

type ReportCountry struct {
	Name       string  `json:"name" yaml:"name"`
	Population int64   `json:"population" yaml:"population"`
	AreaKm2    float64 `json:"area_km2" yaml:"area_km2"`
	Density    float64 `json:"density" yaml:"density"`
}

type ReportSeismic struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Category  string  `json:"category,omitempty" yaml:"category,omitempty"`
	Effect    string  `json:"effect,omitempty" yaml:"effect,omitempty"`
}

type ReportDamage struct {
	DestroyedAreaKm2         float64 `json:"destroyed_area_km2" yaml:"destroyed_area_km2"`
	CountryDestroyed         bool    `json:"country_destroyed" yaml:"country_destroyed"`
	DestroyedPercent         float64 `json:"destroyed_percent" yaml:"destroyed_percent"`
	EarthSurfacePercent      float64 `json:"earth_surface_percent" yaml:"earth_surface_percent"`
	Casualties               float64 `json:"casualties" yaml:"casualties"`
	WholeWorldPopulationLost bool    `json:"whole_world_population_lost" yaml:"whole_world_population_lost"`
}

func NewReport(r domain.ImpactResult, simErr error) Report {
	report := Report{
		Asteroid: ReportAsteroid{
			ID:          string(r.Asteroid.ID),
			Name:        r.Asteroid.Name,
			DiameterMin: r.Asteroid.DiameterMinM,
			DiameterMax: r.Asteroid.DiameterMaxM,
			VelocityKmS: r.Asteroid.VelocityKmS,
			Hazardous:   r.Asteroid.Hazardous,
		},
		Country: ReportCountry{
			Name:       r.Country.Name,
			Population: r.Country.Population,
			AreaKm2:    r.Country.AreaKm2,
			Density:    r.Country.Density,
		},
		MassKg:               r.MassKg,
		EnergyJ:              r.EnergyJ,
		MegatonsTNT:          r.MegatonsTNT,
		HiroshimaEquivalents: r.HiroshimaEquivalents,
		ChicxulubRatio:       r.ExtinctionRatio,
		Severity:             string(r.Severity),
	}

	if r.Seismic != nil {
		report.Seismic = &ReportSeismic{Magnitude: r.Seismic.Magnitude}
		if r.Seismic.Band != nil {
			report.Seismic.Category = r.Seismic.Band.Label
			report.Seismic.Effect = r.Seismic.Band.Effect
		}
	}
	if r.Damage != nil {
		report.Damage = &ReportDamage{
			DestroyedAreaKm2:         r.Damage.DestroyedAreaKm2,
			CountryDestroyed:         r.Damage.CountryDestroyed,
			DestroyedPercent:         r.Damage.DestroyedFraction * 100,
			EarthSurfacePercent:      r.Damage.EarthSurfacePercent,
			Casualties:               r.Damage.Casualties,
			WholeWorldPopulationLost: r.Damage.WorldPopulationClamp,
		}
	}
	if simErr != nil {
		report.Error = simErr.Error()
	}

	return report
}
