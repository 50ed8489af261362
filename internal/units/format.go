package units

import (
	"math"
	"strconv"
	"strings"
)

// Plain notation is used for magnitudes in [plainMin, plainMax).
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// FormatFloat renders v using the shortest digits that round-trip.
// Plain values always carry a fractional part ("10.0", "0.1"); very large
// or very small magnitudes use scientific form ("1.0E7", "3.28084E-4").
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if v == 0 || (abs >= plainMin && abs < plainMax) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv gives e.g. "3.28084E-04"; normalize mantissa and exponent.
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(n)
}
