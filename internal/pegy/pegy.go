// Package pegy computes PEGY valuation ratios from market snapshots. It is
// a sibling utility of the projection engine and is never imported by it.
package pegy

import "github.com/shopspring/decimal"

// DefaultBuffer keeps the denominator away from zero when growth and
// dividend cancel out.
var DefaultBuffer = decimal.NewFromFloat(0.1)

// Ratio computes PEGY = PE / (growth + dividend + buffer). Growth and
// dividend are percentage points, 15 meaning 15%. The result is rounded
// half-even to four places. ok is false when the ratio is undefined, that
// is when PE or the buffered denominator is not positive.
func Ratio(pe, growth, dividend, buffer decimal.Decimal) (decimal.Decimal, bool) {
	denominator := growth.Add(dividend).Add(buffer)

	if pe.LessThanOrEqual(decimal.Zero) || denominator.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, false
	}

	return pe.Div(denominator).RoundBank(4), true
}
