// Package converter models the converter screen as an immutable state value
// and a pure reducer over user events.
package converter

import "github.com/raphaelgruber/unitconv/internal/units"

// State is everything the converter screen shows.
// Output is always derived from Input, From and To.
type State struct {
	Input        string
	From         units.Unit
	To           units.Unit
	FromMenuOpen bool
	ToMenuOpen   bool
	Output       string
}

// Initial returns the starting state: Centimeters to Meters, empty input.
func Initial() State {
	return New(units.Centimeters, units.Meters)
}

// New returns a closed, empty state converting between the given units.
func New(from, to units.Unit) State {
	s := State{From: from, To: to}
	s.Output = s.compute()
	return s
}

// Request returns the conversion request the state represents.
func (s State) Request() units.ConversionRequest {
	return units.ConversionRequest{From: s.From, To: s.To, Input: s.Input}
}

// Factor is the factor currently applied, 1.0 when the input does not parse.
func (s State) Factor() float64 {
	if _, err := units.ParseNumber(s.Input); err != nil {
		return 1.0
	}
	return units.FactorFor(s.From, s.To)
}

func (s State) compute() string {
	return units.Convert(s.Request())
}
