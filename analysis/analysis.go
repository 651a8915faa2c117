// Package analysis holds the single-pass aggregations over flight records: frequency
// tallies, the per-country weekly quota totals, the edge and node weights derived from
// them, and route selection. Everything here is a pure function of its inputs.
package analysis

import "math"

// roundTo rounds half away from zero, to the given number of decimal places
func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
