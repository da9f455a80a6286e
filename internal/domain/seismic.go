package domain

import "fmt"

// SeismicBand covers magnitudes in [MinMagnitude, MaxMagnitude). The last band of a
// scale is closed on both ends.
type SeismicBand struct {
	MinMagnitude float64
	MaxMagnitude float64
	Label        string
	Effect       string
}

type SeismicScale []SeismicBand

// RichterScale spans 1.0 to 100.0 without gaps.
var RichterScale = SeismicScale{
	{MinMagnitude: 1.0, MaxMagnitude: 2.0, Label: "Micro", Effect: "Not felt by people, but recorded by seismographs. Never causes damage."},
	{MinMagnitude: 2.0, MaxMagnitude: 3.0, Label: "Very minor", Effect: "Felt by only a few people. Almost never causes damage."},
	{MinMagnitude: 3.0, MaxMagnitude: 4.0, Label: "Minor", Effect: "Like a passing truck. At most slight damage."},
	{MinMagnitude: 4.0, MaxMagnitude: 5.0, Label: "Light", Effect: "Felt by nearly everyone. Light damage to old buildings."},
	{MinMagnitude: 5.0, MaxMagnitude: 6.0, Label: "Moderate", Effect: "Moderate damage possible. Risk of injuries."},
	{MinMagnitude: 6.0, MaxMagnitude: 7.0, Label: "Strong", Effect: "Heavy damage to buildings and infrastructure."},
	{MinMagnitude: 7.0, MaxMagnitude: 8.0, Label: "Major", Effect: "Widespread panic and destruction."},
	{MinMagnitude: 8.0, MaxMagnitude: 9.0, Label: "Great", Effect: "Devastation across a large area."},
	{MinMagnitude: 9.0, MaxMagnitude: 10.0, Label: "Devastating", Effect: "Total devastation across thousands of kilometres."},
	{MinMagnitude: 10.0, MaxMagnitude: 11.0, Label: "Annihilating", Effect: "Earth changes permanently. Large-scale destruction of life."},
	{MinMagnitude: 11.0, MaxMagnitude: 12.0, Label: "Catastrophic", Effect: "Mass destruction, continents shift position."},
	{MinMagnitude: 12.0, MaxMagnitude: 100.0, Label: "Totally catastrophic", Effect: "Extinction of all life. Global geological changes."},
}

// Classify returns the first band whose range contains magnitude.
func (s SeismicScale) Classify(magnitude float64) (SeismicBand, error) {
	for i, band := range s {
		last := i == len(s)-1
		if magnitude < band.MinMagnitude {
			continue
		}
		if magnitude < band.MaxMagnitude || (last && magnitude == band.MaxMagnitude) {
			return band, nil
		}
	}

	return SeismicBand{}, &InvariantError{
		Invariant: "seismic scale covers magnitude",
		Err:       fmt.Errorf("%w: %.2f", ErrNoSeismicBand, magnitude),
	}
}

// Validate checks that bands are ordered and contiguous.
func (s SeismicScale) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("seismic scale is empty")
	}

	for i, band := range s {
		if band.MaxMagnitude <= band.MinMagnitude {
			return fmt.Errorf("band %q: max %.2f must exceed min %.2f", band.Label, band.MaxMagnitude, band.MinMagnitude)
		}
		if i > 0 && s[i-1].MaxMagnitude != band.MinMagnitude {
			return fmt.Errorf("gap between %q and %q", s[i-1].Label, band.Label)
		}
	}

	return nil
}
