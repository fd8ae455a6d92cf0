package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ProjectionInput {
	return ProjectionInput{
		CurrentAge:        35,
		RetirementAge:     60,
		CurrentInvestment: decimal.NewFromInt(250000),
		AnnualReturn:      decimal.NewFromFloat(0.07),
		MonthlyExpense:    decimal.NewFromInt(4000),
		InflationRate:     decimal.NewFromFloat(0.03),
	}
}

func TestProjectionInputValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*ProjectionInput)
		expectedField string
		expectedMsg   string
	}{
		{
			name:   "valid input passes",
			mutate: func(p *ProjectionInput) {},
		},
		{
			name:          "negative current age",
			mutate:        func(p *ProjectionInput) { p.CurrentAge = -1 },
			expectedField: "current_age",
			expectedMsg:   "current_age must be non-negative",
		},
		{
			name:          "retirement age equal to current age",
			mutate:        func(p *ProjectionInput) { p.RetirementAge = p.CurrentAge },
			expectedField: "retirement_age",
			expectedMsg:   "retirement_age must be greater than current_age",
		},
		{
			name:          "retirement age below current age",
			mutate:        func(p *ProjectionInput) { p.RetirementAge = 30 },
			expectedField: "retirement_age",
			expectedMsg:   "retirement_age must be greater than current_age",
		},
		{
			name:          "negative investment",
			mutate:        func(p *ProjectionInput) { p.CurrentInvestment = decimal.NewFromInt(-1) },
			expectedField: "current_investment",
			expectedMsg:   "current_investment must be non-negative",
		},
		{
			name:          "return of exactly -100%",
			mutate:        func(p *ProjectionInput) { p.AnnualReturn = decimal.NewFromInt(-1) },
			expectedField: "annual_return",
			expectedMsg:   "annual_return must be greater than -100%",
		},
		{
			name:          "return below -100%",
			mutate:        func(p *ProjectionInput) { p.AnnualReturn = decimal.NewFromFloat(-1.5) },
			expectedField: "annual_return",
			expectedMsg:   "annual_return must be greater than -100%",
		},
		{
			name:          "negative monthly expense",
			mutate:        func(p *ProjectionInput) { p.MonthlyExpense = decimal.NewFromInt(-100) },
			expectedField: "monthly_expense",
			expectedMsg:   "monthly_expense must be non-negative",
		},
		{
			name:          "negative inflation",
			mutate:        func(p *ProjectionInput) { p.InflationRate = decimal.NewFromFloat(-0.01) },
			expectedField: "inflation_rate",
			expectedMsg:   "inflation_rate must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			err := input.Validate()

			if tt.expectedField == "" {
				assert.NoError(t, err, "Valid input should not produce an error")
				return
			}

			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve, "Error should be a ValidationError")
			assert.Equal(t, tt.expectedField, ve.Field, "Should name the offending field")
			assert.Equal(t, tt.expectedMsg, ve.Message)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestNewProjectionInput(t *testing.T) {
	input, err := NewProjectionInput(35, 60,
		decimal.NewFromInt(250000), decimal.NewFromFloat(0.07),
		decimal.NewFromInt(4000), decimal.NewFromFloat(0.03))
	require.NoError(t, err)
	assert.Equal(t, 25, input.YearsToGrow(), "60 - 35 should give 25 years")

	_, err = NewProjectionInput(-1, 60,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, IsValidationError(err), "Constructor should reject invalid ages")
}

func TestProjectionInputAcceptsBoundaryValues(t *testing.T) {
	// Zero investment, zero expense, zero inflation and a barely-valid
	// negative return are all legal inputs, not errors.
	input := ProjectionInput{
		CurrentAge:        0,
		RetirementAge:     1,
		CurrentInvestment: decimal.Zero,
		AnnualReturn:      decimal.NewFromFloat(-0.99),
		MonthlyExpense:    decimal.Zero,
		InflationRate:     decimal.Zero,
	}
	assert.NoError(t, input.Validate())
}

func TestIsValidationErrorRejectsOtherErrors(t *testing.T) {
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(assert.AnError))
}
