package domain

import "math"

const (
	RockDensityKgM3       = 3000.0
	HiroshimaJoules       = 6.3e13
	MegatonTNTJoules      = 4.184e15
	ChicxulubJoules       = 1e23
	WorldPopulation       = 8_200_000_000
	HabitableAreaKm2      = 104_000_000.0
	EarthSurfaceKm2       = 510_100_000.0
	HiroshimaDestroyedKm2 = 13.0

	continentalRatio = 0.01
	// SurfaceReportFloor is the smallest Earth-surface percentage shown as a number.
	SurfaceReportFloor = 0.01
)

type Severity string

const (
	SeverityExtinction  Severity = "extinction"
	SeverityContinental Severity = "continental"
	SeverityRegional    Severity = "regional"
)

type Seismic struct {
	Magnitude float64
	Band      *SeismicBand
}

type Damage struct {
	DestroyedAreaKm2     float64
	CountryDestroyed     bool
	DestroyedFraction    float64
	EarthSurfacePercent  float64
	Casualties           float64
	WorldPopulationClamp bool
	ExtraAreaKm2         float64
	ExtraCasualties      float64
}

type ImpactResult struct {
	Asteroid             Asteroid
	Country              Country
	MassKg               float64
	EnergyJ              float64
	MegatonsTNT          float64
	HiroshimaEquivalents float64
	ExtinctionRatio      float64
	Severity             Severity
	Seismic              *Seismic
	Damage               *Damage
}

func (r ImpactResult) ExtinctionEvent() bool {
	return r.Severity == SeverityExtinction
}

// HiroshimaAsPercentage reports whether the yield comparison should be phrased as a
// fraction of one bomb instead of a multiple.
func (r ImpactResult) HiroshimaAsPercentage() bool {
	return r.HiroshimaEquivalents <= 1
}

// EarthSurfaceBelowFloor reports whether the destroyed share of Earth's surface is too
// small to print as a rounded percentage.
func (d Damage) EarthSurfaceBelowFloor() bool {
	return d.EarthSurfacePercent < SurfaceReportFloor
}

func AsteroidMassKg(a Asteroid) float64 {
	radius := a.MeanDiameterM() / 2
	volume := (4.0 / 3.0) * math.Pi * math.Pow(radius, 3)
	return volume * RockDensityKgM3
}

func ImpactEnergyJ(a Asteroid) float64 {
	velocity := a.VelocityKmS * 1000
	return 0.5 * AsteroidMassKg(a) * velocity * velocity
}

func ClassifySeverity(ratio float64) Severity {
	switch {
	case ratio >= 1:
		return SeverityExtinction
	case ratio > continentalRatio:
		return SeverityContinental
	default:
		return SeverityRegional
	}
}

func SeismicMagnitude(energyJ float64) float64 {
	return (math.Log10(energyJ) - 4.8) / 1.5
}

// EstimateDamage spreads the destroyed area over the country first and the world's
// habitable land after that.
func EstimateDamage(hiroshimaEquivalents float64, country Country) Damage {
	area := hiroshimaEquivalents * HiroshimaDestroyedKm2
	damage := Damage{
		DestroyedAreaKm2:    area,
		EarthSurfacePercent: area / EarthSurfaceKm2 * 100,
	}

	if area > country.AreaKm2 {
		damage.CountryDestroyed = true
		damage.DestroyedFraction = 1
		damage.ExtraAreaKm2 = area - country.AreaKm2
		damage.ExtraCasualties = damage.ExtraAreaKm2 * (WorldPopulation / HabitableAreaKm2)

		total := float64(country.Population) + damage.ExtraCasualties
		if total >= WorldPopulation {
			total = WorldPopulation
			damage.WorldPopulationClamp = true
		}
		damage.Casualties = total

		return damage
	}

	if country.AreaKm2 > 0 {
		damage.DestroyedFraction = area / country.AreaKm2
	}
	damage.Casualties = damage.DestroyedFraction * float64(country.Population)

	return damage
}

// Simulate derives the impact consequences of asteroid hitting country. The returned
// error is non-nil only for invariant violations in scale; the result is still usable.
func Simulate(asteroid Asteroid, country Country, scale SeismicScale) (ImpactResult, error) {
	energy := ImpactEnergyJ(asteroid)
	hiroshima := energy / HiroshimaJoules
	ratio := energy / ChicxulubJoules

	result := ImpactResult{
		Asteroid:             asteroid,
		Country:              country,
		MassKg:               AsteroidMassKg(asteroid),
		EnergyJ:              energy,
		MegatonsTNT:          energy / MegatonTNTJoules,
		HiroshimaEquivalents: hiroshima,
		ExtinctionRatio:      ratio,
		Severity:             ClassifySeverity(ratio),
	}

	if result.ExtinctionEvent() {
		return result, nil
	}

	damage := EstimateDamage(hiroshima, country)
	result.Damage = &damage

	magnitude := SeismicMagnitude(energy)
	result.Seismic = &Seismic{Magnitude: magnitude}

	band, err := scale.Classify(magnitude)
	if err != nil {
		return result, err
	}
	result.Seismic.Band = &band

	return result, nil
}
