package money

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when checking that a set of shares adds up
// to a split's total pot. Anything within 5 cents is considered reconciled.
const Epsilon = 0.05

// Round rounds a currency value to 2 decimal places.
func Round(value float64) float64 {
	return math.Round(value*100) / 100
}

// PercentOf returns percent% of amount.
func PercentOf(amount, percent float64) float64 {
	return (amount * percent) / 100
}

// SharesReconcile checks whether shares sum to total within Epsilon.
// The returned remainder is signed (total - sum) and rounded to 2 places
// so callers can display it directly ("Remaining: € 0.50").
func SharesReconcile(shares []float64, total float64) (bool, float64) {
	var sum float64
	for _, s := range shares {
		sum += s
	}
	remainder := total - sum
	return math.Abs(remainder) <= Epsilon, Round(remainder)
}

// Format renders a currency value for display, e.g. "€ 12.34".
// Stored values keep their full float precision; formatting is presentational.
func Format(value float64) string {
	return fmt.Sprintf("€ %.2f", value)
}
