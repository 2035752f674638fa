// Package scoring holds the pure arithmetic behind the execution dashboard:
// actual-vs-target percentages, the three-band status protocol, the
// target/department/company rollups, and the lead-lag correlation heuristic.
// Everything here is stateless and safe for concurrent use.
package scoring

import "math"

// Percentage returns actual/target as a whole percentage, rounded half up.
// A zero or negative target yields 0, never NaN or Inf. Values above 100 are
// not capped: over-completion is reported as-is.
func Percentage(actual, target float64) int {
	return int(math.Round(Fraction(actual, target)))
}

// Fraction is Percentage without the final rounding. Rollups aggregate on
// fractions and round once at the edge so rounding error does not compound.
func Fraction(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return actual / target * 100
}

// Gap returns target - actual. Negative means over-achievement.
func Gap(actual, target float64) float64 {
	return target - actual
}
