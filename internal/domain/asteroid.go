package domain

type AsteroidID string

type Asteroid struct {
	ID             AsteroidID
	Name           string
	DiameterMinM   float64
	DiameterMaxM   float64
	VelocityKmH    float64
	VelocityKmS    float64
	MissDistanceKm float64
	Hazardous      bool
}

// MeanDiameterM is the midpoint of the estimated diameter range.
func (a Asteroid) MeanDiameterM() float64 {
	return (a.DiameterMinM + a.DiameterMaxM) / 2
}

func (a Asteroid) HazardLabel() string {
	if a.Hazardous {
		return "Yes"
	}
	return "No"
}

func FindAsteroid(asteroids []Asteroid, id AsteroidID) (Asteroid, error) {
	for _, asteroid := range asteroids {
		if asteroid.ID == id {
			return asteroid, nil
		}
	}

	return Asteroid{}, ErrAsteroidNotFound
}
