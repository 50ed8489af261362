package converter

import "github.com/raphaelgruber/unitconv/internal/units"

// Event is a user interaction on the converter screen.
type Event interface {
	isEvent()
}

// InputChanged replaces the entered text.
type InputChanged struct{ Text string }

// ToggleFromMenu opens or closes the source unit menu.
type ToggleFromMenu struct{}

// ToggleToMenu opens or closes the target unit menu.
type ToggleToMenu struct{}

// DismissFromMenu closes the source unit menu without a selection.
type DismissFromMenu struct{}

// DismissToMenu closes the target unit menu without a selection.
type DismissToMenu struct{}

// SelectFrom picks the source unit and closes its menu.
type SelectFrom struct{ Unit units.Unit }

// SelectTo picks the target unit and closes its menu.
type SelectTo struct{ Unit units.Unit }

// SwapUnits exchanges source and target units.
type SwapUnits struct{}

func (InputChanged) isEvent()    {}
func (ToggleFromMenu) isEvent()  {}
func (ToggleToMenu) isEvent()    {}
func (DismissFromMenu) isEvent() {}
func (DismissToMenu) isEvent()   {}
func (SelectFrom) isEvent()      {}
func (SelectTo) isEvent()        {}
func (SwapUnits) isEvent()       {}

// Reduce applies ev to s and returns the new state. s is not modified.
// Unknown events and invalid unit selections leave the state unchanged.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case InputChanged:
		s.Input = ev.Text
	case ToggleFromMenu:
		s.FromMenuOpen = !s.FromMenuOpen
	case ToggleToMenu:
		s.ToMenuOpen = !s.ToMenuOpen
	case DismissFromMenu:
		s.FromMenuOpen = false
	case DismissToMenu:
		s.ToMenuOpen = false
	case SelectFrom:
		if !ev.Unit.Valid() {
			return s
		}
		s.From = ev.Unit
		s.FromMenuOpen = false
	case SelectTo:
		if !ev.Unit.Valid() {
			return s
		}
		s.To = ev.Unit
		s.ToMenuOpen = false
	case SwapUnits:
		s.From, s.To = s.To, s.From
	default:
		return s
	}
	s.Output = s.compute()
	return s
}
