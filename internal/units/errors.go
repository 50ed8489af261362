package units

import "errors"

// Sentinel errors for the strict conversion surface.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrUnknownUnit indicates a unit name or value outside the supported set.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnsupportedConversion indicates an ordered pair with no table entry.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrInvalidNumber indicates input text that is not a well-formed number.
	ErrInvalidNumber = errors.New("invalid number")
)
