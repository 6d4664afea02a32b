// Package calc derives the dashboard's summary figures from the sample
// tables and from calculator slider inputs.
//
// Every function is pure. Ratios whose denominator collapses to zero return
// ErrNotComputable instead of an infinite or NaN value, so a caller can
// show "N/A" for that one figure and carry on rendering the rest of the view.
package calc

import (
	"errors"
	"math"
)

var (
	// ErrNotComputable is returned when a ratio's denominator is zero.
	ErrNotComputable = errors.New("not computable")

	// ErrLengthMismatch is returned when paired series differ in length.
	ErrLengthMismatch = errors.New("series length mismatch")

	// ErrUnknownTier is returned for a tier name outside the fixed option lists.
	ErrUnknownTier = errors.New("unknown tier")
)

// ratio divides num by den, refusing zero denominators and non-finite results.
func ratio(num, den float64) (float64, error) {
	if den == 0 {
		return 0, ErrNotComputable
	}
	v := num / den
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotComputable
	}
	return v, nil
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
