package calculation

import "github.com/shopspring/decimal"

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalZero   = decimal.Zero
	decimalTwelve = decimal.NewFromInt(12)
)

func onePlus(rate decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(rate)
}

// FutureValue compounds a present value at an annual rate over whole years:
// FV = PV x (1 + r)^n. Zero years returns the present value unchanged.
func FutureValue(presentValue, annualReturn decimal.Decimal, years int) decimal.Decimal {
	if years == 0 {
		return presentValue
	}
	return presentValue.Mul(onePlus(annualReturn).Pow(decimal.NewFromInt(int64(years))))
}

// PresentValue discounts a future value back over whole years at an annual
// rate, the inverse of FutureValue. Zero years returns the value unchanged.
func PresentValue(futureValue, annualReturn decimal.Decimal, years int) decimal.Decimal {
	if years == 0 {
		return futureValue
	}
	return futureValue.Div(onePlus(annualReturn).Pow(decimal.NewFromInt(int64(years))))
}

// FutureValueOfContributions accumulates a level monthly deposit as an
// ordinary annuity: FV = PMT x ((1+r)^n - 1)/r, where r is the monthly rate
// (annual/12) and n the number of monthly deposits. A zero rate degenerates
// to straight accumulation PMT x n, and a zero-year horizon holds nothing.
func FutureValueOfContributions(monthly, annualReturn decimal.Decimal, years int) decimal.Decimal {
	if years == 0 {
		return decimalZero
	}
	monthlyReturn := annualReturn.Div(decimalTwelve)
	totalMonths := decimal.NewFromInt(int64(years) * 12)
	if monthlyReturn.IsZero() {
		return monthly.Mul(totalMonths)
	}
	fvFactor := onePlus(monthlyReturn).Pow(totalMonths).Sub(decimalOne).Div(monthlyReturn)
	return monthly.Mul(fvFactor)
}

// RequiredContribution inverts FutureValueOfContributions: the level monthly
// deposit whose accumulated value reaches the target after the given years.
// A zero-year horizon admits no deposits, so it returns zero.
func RequiredContribution(target, annualReturn decimal.Decimal, years int) decimal.Decimal {
	if years == 0 {
		return decimalZero
	}
	monthlyReturn := annualReturn.Div(decimalTwelve)
	totalMonths := decimal.NewFromInt(int64(years) * 12)
	if monthlyReturn.IsZero() {
		return target.Div(totalMonths)
	}
	fvFactor := onePlus(monthlyReturn).Pow(totalMonths).Sub(decimalOne).Div(monthlyReturn)
	return target.Div(fvFactor)
}
