package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/domain"
)

// DefaultWithdrawalRate sizes the retirement target: a portfolio of 25x
// annual spending sustains a 4% annual draw.
var DefaultWithdrawalRate = decimal.NewFromFloat(0.04)

// Engine evaluates projection inputs against the retirement target.
type Engine struct {
	WithdrawalRate decimal.Decimal
	Debug          bool // Enable debug output for intermediate values
	Logger         Logger
}

// NewEngine creates an engine using the default withdrawal rate.
func NewEngine() *Engine {
	return &Engine{
		WithdrawalRate: DefaultWithdrawalRate,
		Logger:         noopLogger{},
	}
}

// Evaluate computes whether the input's current investment, left to compound
// untouched, reaches the retirement target. The AnnualReturn rate is applied
// as a single scalar; callers wanting a declining-rate model resolve their
// ReturnSchedule to one rate with EffectiveRate before building the input.
func (e *Engine) Evaluate(input domain.ProjectionInput) (domain.ProjectionResult, error) {
	if err := input.Validate(); err != nil {
		return domain.ProjectionResult{}, err
	}

	years := input.YearsToGrow()
	annualExpense := e.AnnualExpenseAtRetirement(input.MonthlyExpense, input.InflationRate, years)
	target := e.targetFromAnnualExpense(annualExpense)
	projected := FutureValue(input.CurrentInvestment, input.AnnualReturn, years)

	if e.Debug {
		e.logger().Debugf("evaluate: years=%d target=%s projected=%s",
			years, target.StringFixed(2), projected.StringFixed(2))
	}

	return domain.ProjectionResult{
		YearsToGrow:               years,
		AnnualExpenseAtRetirement: annualExpense,
		TargetNumber:              target,
		ProjectedValue:            projected,
		SurplusOrShortfall:        projected.Sub(target),
		IsSufficient:              projected.GreaterThanOrEqual(target),
	}, nil
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return noopLogger{}
	}
	return e.Logger
}

// withdrawalRate guards against a zero-valued engine so target math never
// divides by zero.
func (e *Engine) withdrawalRate() decimal.Decimal {
	if e.WithdrawalRate.IsZero() {
		return DefaultWithdrawalRate
	}
	return e.WithdrawalRate
}
