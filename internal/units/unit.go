// Package units holds the supported length units and the static table of
// pairwise conversion factors between them.
package units

import (
	"fmt"
	"strings"
)

// Unit is one of the supported length units.
type Unit uint8

// Supported units. The order is the table index order.
const (
	Millimeters Unit = iota
	Centimeters
	Meters
	Feet

	numUnits
)

var unitNames = [numUnits]string{
	Millimeters: "Millimeters",
	Centimeters: "Centimeters",
	Meters:      "Meters",
	Feet:        "Feet",
}

var unitSymbols = [numUnits]string{
	Millimeters: "mm",
	Centimeters: "cm",
	Meters:      "m",
	Feet:        "ft",
}

// aliases maps lowercased spellings accepted by ParseUnit.
var aliases = map[string]Unit{
	"millimeter": Millimeters, "millimeters": Millimeters, "millimetre": Millimeters, "millimetres": Millimeters,
	"centimeter": Centimeters, "centimeters": Centimeters, "centimetre": Centimeters, "centimetres": Centimeters,
	"meter": Meters, "meters": Meters, "metre": Meters, "metres": Meters,
	"foot": Feet, "feet": Feet,
}

// Units returns all supported units in display order.
func Units() []Unit {
	return []Unit{Millimeters, Centimeters, Meters, Feet}
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u < numUnits
}

// String returns the display name, e.g. "Centimeters".
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitNames[u]
}

// Symbol returns the short symbol, e.g. "cm".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return "?"
	}
	return unitSymbols[u]
}

// ParseUnit resolves a display name, symbol or alias (case-insensitive).
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if u, ok := aliases[key]; ok {
		return u, nil
	}
	for u, sym := range unitSymbols {
		if key == sym {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// MarshalText implements encoding.TextMarshaler so units serialize by name.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseUnit.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
