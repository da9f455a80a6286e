package domain

// Session holds at most one selected asteroid and one selected country. The zero
// value is an empty session.
type Session struct {
	asteroid *Asteroid
	country  *Country
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) SetAsteroid(asteroid Asteroid) {
	s.asteroid = &asteroid
}

func (s *Session) SetCountry(country Country) {
	s.country = &country
}

func (s *Session) Asteroid() (Asteroid, bool) {
	if s.asteroid == nil {
		return Asteroid{}, false
	}
	return *s.asteroid, true
}

func (s *Session) Country() (Country, bool) {
	if s.country == nil {
		return Country{}, false
	}
	return *s.country, true
}

func (s *Session) Ready() bool {
	return s.asteroid != nil && s.country != nil
}

// Simulate runs the impact for the current selection and hands the outcome to present.
// Both selections are cleared once present returns, whatever it returned.
func (s *Session) Simulate(scale SeismicScale, present func(ImpactResult, error) error) error {
	if !s.Ready() {
		return ErrSelectionIncomplete
	}

	result, simErr := Simulate(*s.asteroid, *s.country, scale)
	defer s.clear()

	return present(result, simErr)
}

func (s *Session) clear() {
	s.asteroid = nil
	s.country = nil
}
