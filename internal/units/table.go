package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ConversionEntry maps an ordered unit pair to its factor.
type ConversionEntry struct {
	From   Unit    `json:"from" yaml:"from"`
	To     Unit    `json:"to" yaml:"to"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// ConversionRequest is a single conversion of user-entered text.
type ConversionRequest struct {
	From  Unit
	To    Unit
	Input string
}

// entries is the static table, in display order. Both directions are
// listed explicitly and are not derived from each other.
var entries = []ConversionEntry{
	{Millimeters, Centimeters, 0.1},
	{Centimeters, Millimeters, 10.0},
	{Centimeters, Meters, 0.01},
	{Meters, Centimeters, 100.0},
	{Meters, Feet, 3.28084},
	{Feet, Meters, 0.3048},
	{Millimeters, Meters, 0.001},
	{Meters, Millimeters, 1000.0},
	{Millimeters, Feet, 0.00328084},
	{Feet, Millimeters, 304.8},
	{Centimeters, Feet, 0.0328084},
	{Feet, Centimeters, 30.48},
}

// factors is indexed by [from][to]; defined marks tabulated cells.
var (
	factors [numUnits][numUnits]float64
	defined [numUnits][numUnits]bool
)

func init() {
	for _, e := range entries {
		factors[e.From][e.To] = e.Factor
		defined[e.From][e.To] = true
	}
}

// Entries returns a copy of the static table in display order.
func Entries() []ConversionEntry {
	out := make([]ConversionEntry, len(entries))
	copy(out, entries)
	return out
}

// Defined reports whether the ordered pair has an explicit table entry.
func Defined(from, to Unit) bool {
	return from.Valid() && to.Valid() && defined[from][to]
}

// FactorFor returns the multiplier converting from one unit to another.
// Any pair without a table entry, including from == to and out-of-range
// units, yields the identity factor 1.0.
func FactorFor(from, to Unit) float64 {
	if !Defined(from, to) {
		return 1.0
	}
	return factors[from][to]
}

// Lookup is the strict form of FactorFor. Identity pairs resolve to 1.0;
// any other pair without an entry is an error.
func Lookup(from, to Unit) (float64, error) {
	if !from.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, from)
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, to)
	}
	if from == to {
		return 1.0, nil
	}
	if !defined[from][to] {
		return 0, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}
	return factors[from][to], nil
}

// ConvertValue scales v by FactorFor(from, to).
func ConvertValue(v float64, from, to Unit) float64 {
	return v * FactorFor(from, to)
}

// Convert parses req.Input and returns the converted value as display text.
// Input that does not parse yields "0.0".
func Convert(req ConversionRequest) string {
	v, err := ParseNumber(req.Input)
	if err != nil {
		return "0.0"
	}
	return FormatFloat(ConvertValue(v, req.From, req.To))
}

// ConvertStrict is Convert without fallbacks: unparseable input and pairs
// Lookup rejects are returned as errors.
func ConvertStrict(req ConversionRequest) (string, error) {
	v, err := ParseNumber(req.Input)
	if err != nil {
		return "", err
	}
	f, err := Lookup(req.From, req.To)
	if err != nil {
		return "", err
	}
	return FormatFloat(v * f), nil
}

// numberPattern is the accepted number syntax: optional sign, then NaN,
// Infinity, a decimal with optional exponent, or a hex significand with a
// binary exponent. Finite forms may end in one of fFdD.
var numberPattern = regexp.MustCompile(`^[+-]?(?:NaN|Infinity|(?:(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?|0[xX](?:[0-9a-fA-F]+\.?|[0-9a-fA-F]*\.[0-9a-fA-F]+)[pP][+-]?[0-9]+)[fFdD]?)$`)

// ParseNumber parses s as a real number after trimming surrounding ASCII
// control characters and spaces. Empty, malformed and out-of-range input
// all fail with ErrInvalidNumber.
func ParseNumber(s string) (float64, error) {
	trimmed := strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	if !numberPattern.MatchString(trimmed) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	// strconv rejects a signed NaN.
	if strings.HasSuffix(trimmed, "NaN") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimRight(trimmed, "fFdD"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}
