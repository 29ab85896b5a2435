package report

import "math"

// SafeRatio returns a/b, or 0 when b is zero or undefined (NaN). A non-finite
// quotient is reported as 0 as well.
func SafeRatio(a, b float64) float64 {
	if b == 0 || math.IsNaN(b) {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// percent is SafeRatio scaled to a percentage.
func percent(a, b float64) float64 {
	return SafeRatio(a, b) * 100
}
