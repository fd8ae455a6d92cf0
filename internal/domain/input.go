package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionInput describes a saver's situation today and their retirement
// horizon. Rates are decimal fractions (0.07 means 7%), never percent values;
// converting user-facing percentages happens at the presentation boundary.
type ProjectionInput struct {
	CurrentAge        int             `json:"current_age"`
	RetirementAge     int             `json:"retirement_age"`
	CurrentInvestment decimal.Decimal `json:"current_investment"`
	AnnualReturn      decimal.Decimal `json:"annual_return"`
	MonthlyExpense    decimal.Decimal `json:"monthly_expense"`
	InflationRate     decimal.Decimal `json:"inflation_rate"`
}

// NewProjectionInput builds a validated ProjectionInput. It returns a
// *ValidationError naming the offending field when any invariant is violated.
func NewProjectionInput(currentAge, retirementAge int, currentInvestment, annualReturn, monthlyExpense, inflationRate decimal.Decimal) (ProjectionInput, error) {
	input := ProjectionInput{
		CurrentAge:        currentAge,
		RetirementAge:     retirementAge,
		CurrentInvestment: currentInvestment,
		AnnualReturn:      annualReturn,
		MonthlyExpense:    monthlyExpense,
		InflationRate:     inflationRate,
	}
	if err := input.Validate(); err != nil {
		return ProjectionInput{}, err
	}
	return input, nil
}

// Validate checks every field invariant and reports the first violation.
func (p ProjectionInput) Validate() error {
	if p.CurrentAge < 0 {
		return &ValidationError{Field: "current_age", Message: "current_age must be non-negative"}
	}
	if p.RetirementAge <= p.CurrentAge {
		return &ValidationError{Field: "retirement_age", Message: "retirement_age must be greater than current_age"}
	}
	if p.CurrentInvestment.IsNegative() {
		return &ValidationError{Field: "current_investment", Message: "current_investment must be non-negative"}
	}
	if p.AnnualReturn.LessThanOrEqual(decimalNegOne) {
		return &ValidationError{Field: "annual_return", Message: "annual_return must be greater than -100%"}
	}
	if p.MonthlyExpense.IsNegative() {
		return &ValidationError{Field: "monthly_expense", Message: "monthly_expense must be non-negative"}
	}
	if p.InflationRate.IsNegative() {
		return &ValidationError{Field: "inflation_rate", Message: "inflation_rate must be non-negative"}
	}
	return nil
}

// YearsToGrow returns the whole years between the current age and retirement.
func (p ProjectionInput) YearsToGrow() int {
	return p.RetirementAge - p.CurrentAge
}

var decimalNegOne = decimal.NewFromInt(-1)
