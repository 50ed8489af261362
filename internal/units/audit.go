package units

import "math"

// DefaultTolerance is the relative error accepted by the round-trip audit.
const DefaultTolerance = 1e-6

// RoundTrip is the audit result for one tabulated pair and its reverse.
type RoundTrip struct {
	From    Unit    `json:"from" yaml:"from"`
	To      Unit    `json:"to" yaml:"to"`
	Forward float64 `json:"forward" yaml:"forward"`
	Reverse float64 `json:"reverse" yaml:"reverse"`
	// Product is Forward * Reverse; 1.0 for a consistent pair.
	Product float64 `json:"product" yaml:"product"`
	OK      bool    `json:"ok" yaml:"ok"`
}

// CheckRoundTrips audits every tabulated pair whose reverse is also
// tabulated. Each unordered pair is reported once, in table order.
func CheckRoundTrips(tol float64) []RoundTrip {
	var out []RoundTrip
	seen := make(map[[2]Unit]bool)
	for _, e := range entries {
		if !Defined(e.To, e.From) {
			continue
		}
		key := [2]Unit{min(e.From, e.To), max(e.From, e.To)}
		if seen[key] {
			continue
		}
		seen[key] = true

		rev := factors[e.To][e.From]
		product := e.Factor * rev
		out = append(out, RoundTrip{
			From:    e.From,
			To:      e.To,
			Forward: e.Factor,
			Reverse: rev,
			Product: product,
			OK:      math.Abs(product-1) <= tol,
		})
	}
	return out
}

// RoundTripValue converts v from a to b and back using the two directional
// entries.
func RoundTripValue(v float64, a, b Unit) float64 {
	return ConvertValue(ConvertValue(v, a, b), b, a)
}
