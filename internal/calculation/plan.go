package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/domain"
)

// ContributionPlan sizes the level monthly deposit needed to build the full
// retirement target over the whole horizon. The existing lump sum is grown
// and reported alongside, but the deposit is sized against the full target,
// not the shortfall, so the two figures answer separate questions: "what
// does my lump sum do on its own" and "what deposit builds the target from
// scratch".
type ContributionPlan struct {
	Input                     domain.ProjectionInput `json:"input"`
	YearsToGrow               int                    `json:"years_to_grow"`
	AnnualExpenseAtRetirement decimal.Decimal        `json:"annual_expense_at_retirement"`
	TargetNumber              decimal.Decimal        `json:"target_number"`
	LumpSumFutureValue        decimal.Decimal        `json:"lump_sum_future_value"`
	Shortfall                 decimal.Decimal        `json:"shortfall"`
	RequiredMonthly           decimal.Decimal        `json:"required_monthly"`
	IsSufficient              bool                   `json:"is_sufficient"`
}

// CalculateContributionPlan works out the monthly deposit required to reach
// the retirement target by the retirement age. When the lump sum alone
// already covers the target, RequiredMonthly is zero.
func (e *Engine) CalculateContributionPlan(input domain.ProjectionInput) (*ContributionPlan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	years := input.YearsToGrow()
	annualExpense := e.AnnualExpenseAtRetirement(input.MonthlyExpense, input.InflationRate, years)
	target := e.targetFromAnnualExpense(annualExpense)
	lumpSumFV := FutureValue(input.CurrentInvestment, input.AnnualReturn, years)
	sufficient := lumpSumFV.GreaterThanOrEqual(target)

	required := decimalZero
	if !sufficient {
		required = RequiredContribution(target, input.AnnualReturn, years)
	}

	return &ContributionPlan{
		Input:                     input,
		YearsToGrow:               years,
		AnnualExpenseAtRetirement: annualExpense,
		TargetNumber:              target,
		LumpSumFutureValue:        lumpSumFV,
		Shortfall:                 target.Sub(lumpSumFV),
		RequiredMonthly:           required,
		IsSufficient:              sufficient,
	}, nil
}

// CoastPlan describes a two-phase plan around a chosen coast age: deposit
// monthly until that age, then let the balance compound untouched until
// retirement. The deposit is sized so the balance at the coast age equals
// the target discounted back from retirement; the current investment plays
// no part in the sizing.
type CoastPlan struct {
	Input                     domain.ProjectionInput `json:"input"`
	CoastAge                  int                    `json:"coast_age"`
	YearsToInvest             int                    `json:"years_to_invest"`
	YearsToGrowAfter          int                    `json:"years_to_grow_after"`
	AnnualExpenseAtRetirement decimal.Decimal        `json:"annual_expense_at_retirement"`
	TargetNumber              decimal.Decimal        `json:"target_number"`
	AmountAtCoastAge          decimal.Decimal        `json:"amount_at_coast_age"`
	RequiredMonthly           decimal.Decimal        `json:"required_monthly"`
	MonthlyWithdrawal         decimal.Decimal        `json:"monthly_withdrawal"`
}

// CalculateCoastPlan works out the monthly deposit required between now and
// the chosen coast age so that the accumulated amount grows on its own to
// the retirement target.
func (e *Engine) CalculateCoastPlan(input domain.ProjectionInput, coastAge int) (*CoastPlan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if coastAge <= input.CurrentAge {
		return nil, &domain.ValidationError{Field: "coast_age", Message: "coast_age must be greater than current_age"}
	}
	if coastAge > input.RetirementAge {
		return nil, &domain.ValidationError{Field: "coast_age", Message: "coast_age must not be greater than retirement_age"}
	}

	yearsToInvest := coastAge - input.CurrentAge
	yearsAfter := input.RetirementAge - coastAge

	annualExpense := e.AnnualExpenseAtRetirement(input.MonthlyExpense, input.InflationRate, input.YearsToGrow())
	target := e.targetFromAnnualExpense(annualExpense)
	amountAtCoast := PresentValue(target, input.AnnualReturn, yearsAfter)
	required := RequiredContribution(amountAtCoast, input.AnnualReturn, yearsToInvest)

	return &CoastPlan{
		Input:                     input,
		CoastAge:                  coastAge,
		YearsToInvest:             yearsToInvest,
		YearsToGrowAfter:          yearsAfter,
		AnnualExpenseAtRetirement: annualExpense,
		TargetNumber:              target,
		AmountAtCoastAge:          amountAtCoast,
		RequiredMonthly:           required,
		MonthlyWithdrawal:         e.MonthlySpendingPower(target),
	}, nil
}
