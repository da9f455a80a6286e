package neows

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/astro-impact/internal/domain"
)

var ErrMissingApproach = errors.New("object has no close approach data")

type feedResponse struct {
	ElementCount     int                 `json:"element_count"`
	NearEarthObjects map[string][]Object `json:"near_earth_objects"`
}

// Object is a near-earth object as NeoWs serves it. The object cache stores the
// same shape.
type Object struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	EstimatedDiameter estimatedDiameter `json:"estimated_diameter"`
	Hazardous         bool              `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData []closeApproach   `json:"close_approach_data"`
}

type estimatedDiameter struct {
	Meters diameterRange `json:"meters"`
}

type diameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

type closeApproach struct {
	Date             string           `json:"close_approach_date,omitempty"`
	RelativeVelocity relativeVelocity `json:"relative_velocity"`
	MissDistance     missDistance     `json:"miss_distance"`
}

type relativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
	KilometersPerHour   string `json:"kilometers_per_hour"`
}

type missDistance struct {
	Kilometers string `json:"kilometers"`
}

func (o Object) ToDomain() (domain.Asteroid, error) {
	if o.ID == "" {
		return domain.Asteroid{}, errors.New("object id is empty")
	}
	if len(o.CloseApproachData) == 0 {
		return domain.Asteroid{}, fmt.Errorf("object %s: %w", o.ID, ErrMissingApproach)
	}

	approach := o.CloseApproachData[0]
	kmS, err := parseNumber(approach.RelativeVelocity.KilometersPerSecond)
	if err != nil {
		return domain.Asteroid{}, fmt.Errorf("object %s: kilometers_per_second: %w", o.ID, err)
	}
	kmH, err := parseNumber(approach.RelativeVelocity.KilometersPerHour)
	if err != nil {
		return domain.Asteroid{}, fmt.Errorf("object %s: kilometers_per_hour: %w", o.ID, err)
	}
	missKm, err := parseNumber(approach.MissDistance.Kilometers)
	if err != nil {
		return domain.Asteroid{}, fmt.Errorf("object %s: miss_distance: %w", o.ID, err)
	}

	return domain.Asteroid{
		ID:             domain.AsteroidID(o.ID),
		Name:           o.Name,
		DiameterMinM:   o.EstimatedDiameter.Meters.Min,
		DiameterMaxM:   o.EstimatedDiameter.Meters.Max,
		VelocityKmH:    kmH,
		VelocityKmS:    kmS,
		MissDistanceKm: missKm,
		Hazardous:      o.Hazardous,
	}, nil
}

func FromDomain(asteroid domain.Asteroid) Object {
	return Object{
		ID:   string(asteroid.ID),
		Name: asteroid.Name,
		EstimatedDiameter: estimatedDiameter{
			Meters: diameterRange{Min: asteroid.DiameterMinM, Max: asteroid.DiameterMaxM},
		},
		Hazardous: asteroid.Hazardous,
		CloseApproachData: []closeApproach{{
			RelativeVelocity: relativeVelocity{
				KilometersPerSecond: formatNumber(asteroid.VelocityKmS),
				KilometersPerHour:   formatNumber(asteroid.VelocityKmH),
			},
			MissDistance: missDistance{Kilometers: formatNumber(asteroid.MissDistanceKm)},
		}},
	}
}

func ObjectsToDomain(objects []Object) ([]domain.Asteroid, error) {
	asteroids := make([]domain.Asteroid, 0, len(objects))
	for _, object := range objects {
		asteroid, err := object.ToDomain()
		if err != nil {
			return nil, err
		}
		asteroids = append(asteroids, asteroid)
	}

	return asteroids, nil
}

func ObjectsFromDomain(asteroids []domain.Asteroid) []Object {
	objects := make([]Object, 0, len(asteroids))
	for _, asteroid := range asteroids {
		objects = append(objects, FromDomain(asteroid))
	}

	return objects
}

func parseNumber(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
