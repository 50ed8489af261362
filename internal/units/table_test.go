package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorFor_TabulatedPairs(t *testing.T) {
	tests := []struct {
		from, to Unit
		want     float64
	}{
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

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FactorFor(tt.from, tt.to))
			assert.True(t, Defined(tt.from, tt.to))
		})
	}
	assert.Len(t, Entries(), len(tests))
}

func TestFactorFor_IdentityFallback(t *testing.T) {
	for _, u := range Units() {
		assert.Equal(t, 1.0, FactorFor(u, u), u.String())
		assert.False(t, Defined(u, u))
	}
}

func TestFactorFor_OutOfRangeUnit(t *testing.T) {
	bogus := Unit(42)
	assert.Equal(t, 1.0, FactorFor(bogus, Meters))
	assert.Equal(t, 1.0, FactorFor(Meters, bogus))
}

func TestFactorFor_AllDistinctPairsTabulated(t *testing.T) {
	for _, a := range Units() {
		for _, b := range Units() {
			if a == b {
				continue
			}
			assert.True(t, Defined(a, b), "%s -> %s", a, b)
		}
	}
}

func TestLookup(t *testing.T) {
	f, err := Lookup(Meters, Feet)
	require.NoError(t, err)
	assert.Equal(t, 3.28084, f)

	f, err = Lookup(Feet, Feet)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	_, err = Lookup(Unit(9), Feet)
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = Lookup(Feet, Unit(9))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestLookup_MissingEntry(t *testing.T) {
	defined[Meters][Feet] = false
	t.Cleanup(func() { defined[Meters][Feet] = true })

	_, err := Lookup(Meters, Feet)
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
	assert.Equal(t, 1.0, FactorFor(Meters, Feet))

	_, err = ConvertStrict(ConversionRequest{Meters, Feet, "1"})
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
	assert.Equal(t, "1.0", Convert(ConversionRequest{Meters, Feet, "1"}))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		req  ConversionRequest
		want string
	}{
		{"cm to m", ConversionRequest{Centimeters, Meters, "10"}, "0.1"},
		{"m to ft", ConversionRequest{Meters, Feet, "1"}, "3.28084"},
		{"mm to cm", ConversionRequest{Millimeters, Centimeters, "1"}, "0.1"},
		{"cm to mm", ConversionRequest{Centimeters, Millimeters, "1"}, "10.0"},
		{"m to mm", ConversionRequest{Meters, Millimeters, "2.5"}, "2500.0"},
		{"identity", ConversionRequest{Feet, Feet, "7"}, "7.0"},
		{"surrounding space", ConversionRequest{Centimeters, Meters, " 10 "}, "0.1"},
		{"negative", ConversionRequest{Meters, Centimeters, "-3"}, "-300.0"},
		{"large uses exponent", ConversionRequest{Meters, Millimeters, "10000"}, "1.0E7"},
		{"non-numeric", ConversionRequest{Meters, Feet, "abc"}, "0.0"},
		{"empty", ConversionRequest{Centimeters, Meters, ""}, "0.0"},
		{"trailing junk", ConversionRequest{Centimeters, Meters, "10cm"}, "0.0"},
		{"overflow", ConversionRequest{Centimeters, Meters, "1e400"}, "0.0"},
		{"float suffix", ConversionRequest{Meters, Centimeters, "1.5f"}, "150.0"},
		{"double suffix", ConversionRequest{Meters, Centimeters, "2d"}, "200.0"},
		{"exponent", ConversionRequest{Meters, Centimeters, "1e3"}, "100000.0"},
		{"leading dot", ConversionRequest{Meters, Centimeters, ".5"}, "50.0"},
		{"trailing dot", ConversionRequest{Meters, Centimeters, "5."}, "500.0"},
		{"plus sign", ConversionRequest{Meters, Centimeters, "+1"}, "100.0"},
		{"hex", ConversionRequest{Meters, Centimeters, "0x1p3"}, "800.0"},
		{"control chars trimmed", ConversionRequest{Meters, Centimeters, "\t10\n"}, "1000.0"},
		{"Infinity", ConversionRequest{Meters, Centimeters, "Infinity"}, "Infinity"},
		{"negative Infinity", ConversionRequest{Meters, Centimeters, "-Infinity"}, "-Infinity"},
		{"NaN", ConversionRequest{Meters, Centimeters, "NaN"}, "NaN"},
		{"signed NaN", ConversionRequest{Meters, Centimeters, "-NaN"}, "NaN"},
		{"underscore", ConversionRequest{Meters, Centimeters, "1_000"}, "0.0"},
		{"lowercase inf", ConversionRequest{Meters, Centimeters, "inf"}, "0.0"},
		{"uppercase INF", ConversionRequest{Meters, Centimeters, "INF"}, "0.0"},
		{"lowercase infinity", ConversionRequest{Meters, Centimeters, "-infinity"}, "0.0"},
		{"lowercase nan", ConversionRequest{Meters, Centimeters, "nan"}, "0.0"},
		{"suffix on NaN", ConversionRequest{Meters, Centimeters, "NaNd"}, "0.0"},
		{"non-breaking space", ConversionRequest{Meters, Centimeters, "\u00a010"}, "0.0"},
		{"lone dot", ConversionRequest{Meters, Centimeters, "."}, "0.0"},
		{"hex without exponent", ConversionRequest{Meters, Centimeters, "0x10"}, "0.0"},
		{"two suffixes", ConversionRequest{Meters, Centimeters, "1fd"}, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.req))
		})
	}
}

func TestConvert_UnparseableIgnoresUnits(t *testing.T) {
	for _, a := range Units() {
		for _, b := range Units() {
			assert.Equal(t, "0.0", Convert(ConversionRequest{From: a, To: b, Input: "abc"}))
		}
	}
}

func TestConvertStrict(t *testing.T) {
	got, err := ConvertStrict(ConversionRequest{Centimeters, Meters, "10"})
	require.NoError(t, err)
	assert.Equal(t, "0.1", got)

	_, err = ConvertStrict(ConversionRequest{Centimeters, Meters, "abc"})
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = ConvertStrict(ConversionRequest{Unit(7), Meters, "1"})
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestReciprocalMillimetersCentimeters(t *testing.T) {
	assert.Equal(t, 0.1, FactorFor(Millimeters, Centimeters))
	assert.Equal(t, 10.0, FactorFor(Centimeters, Millimeters))
	assert.InDelta(t, 1.0, FactorFor(Millimeters, Centimeters)*FactorFor(Centimeters, Millimeters), 1e-15)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	e := Entries()
	e[0].Factor = 99
	assert.Equal(t, 0.1, FactorFor(Millimeters, Centimeters))
}
