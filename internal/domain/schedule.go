package domain

import "github.com/shopspring/decimal"

var decimalTwo = decimal.NewFromInt(2)

// ReturnSchedule models an expected annual return that declines linearly as a
// portfolio is de-risked: year 1 earns InitialRate, and each later year earns
// AnnualDecrease less, floored at zero.
type ReturnSchedule struct {
	InitialRate    decimal.Decimal `json:"initial_rate"`
	AnnualDecrease decimal.Decimal `json:"annual_decrease"`
}

// FlatSchedule returns a schedule whose rate never declines.
func FlatSchedule(rate decimal.Decimal) ReturnSchedule {
	return ReturnSchedule{InitialRate: rate}
}

// EffectiveRate collapses the schedule over a horizon of the given number of
// years into one scalar rate: the average of the first year's rate and the
// final year's floored rate. This is a deliberate linear approximation of the
// glide path, not an exact year-by-year composition. Zero years means no
// decline has happened, so the initial rate is returned unchanged.
func (s ReturnSchedule) EffectiveRate(years int) decimal.Decimal {
	if years <= 0 {
		return s.InitialRate
	}
	final := s.InitialRate.Sub(s.AnnualDecrease.Mul(decimal.NewFromInt(int64(years - 1))))
	if final.IsNegative() {
		final = decimal.Zero
	}
	return s.InitialRate.Add(final).Div(decimalTwo)
}

// RateAfter returns the nominal rate in effect once the given number of years
// has elapsed, floored at zero.
func (s ReturnSchedule) RateAfter(years int) decimal.Decimal {
	rate := s.InitialRate.Sub(s.AnnualDecrease.Mul(decimal.NewFromInt(int64(years))))
	if rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

// Advance returns the schedule as seen after the given number of years: it
// starts at RateAfter(years) and keeps declining at the same pace.
func (s ReturnSchedule) Advance(years int) ReturnSchedule {
	return ReturnSchedule{InitialRate: s.RateAfter(years), AnnualDecrease: s.AnnualDecrease}
}
