package calculation

import "github.com/shopspring/decimal"

// AnnualExpenseAtRetirement inflates today's monthly spending to an annual
// figure at the retirement date: monthly x 12 x (1 + inflation)^years.
func (e *Engine) AnnualExpenseAtRetirement(monthlyExpense, inflationRate decimal.Decimal, years int) decimal.Decimal {
	annual := monthlyExpense.Mul(decimalTwelve)
	return FutureValue(annual, inflationRate, years)
}

// TargetNumber converts spending assumptions into the portfolio required to
// sustain them at the engine's withdrawal rate.
func (e *Engine) TargetNumber(monthlyExpense, inflationRate decimal.Decimal, years int) decimal.Decimal {
	return e.targetFromAnnualExpense(e.AnnualExpenseAtRetirement(monthlyExpense, inflationRate, years))
}

func (e *Engine) targetFromAnnualExpense(annualExpense decimal.Decimal) decimal.Decimal {
	return annualExpense.Div(e.withdrawalRate())
}

// MonthlySpendingPower returns the monthly draw a portfolio supports at the
// engine's withdrawal rate.
func (e *Engine) MonthlySpendingPower(portfolio decimal.Decimal) decimal.Decimal {
	return portfolio.Mul(e.withdrawalRate()).Div(decimalTwelve)
}
