// Package money holds the shared rules for dollar amounts. All balances are
// decimal.Decimal so that cent-level comparisons are exact.
package money

import "github.com/shopspring/decimal"

// Epsilon is the smallest balance worth keeping. Anything at or below it is
// treated as drained rather than left as residue.
var Epsilon = decimal.New(1, -2) // 0.01

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}

	return b
}

// NonNegative clamps v to zero from below.
func NonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}

	return v
}
