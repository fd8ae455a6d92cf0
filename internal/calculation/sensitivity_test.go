package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeParameterReturnSweep(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(NewEngine())

	param := SweepParameter{
		Name:      "annual_return",
		BaseValue: decimal.NewFromFloat(0.07),
		MinValue:  decimal.NewFromFloat(0.05),
		MaxValue:  decimal.NewFromFloat(0.13),
		Steps:     5,
	}

	analysis, err := analyzer.AnalyzeParameter(baseInput(), param)
	require.NoError(t, err)
	require.Len(t, analysis.Points, 5)

	assert.True(t, analysis.Points[0].Value.Equal(decimal.NewFromFloat(0.05)),
		"Grid should start at the minimum, got %s", analysis.Points[0].Value)
	assert.True(t, analysis.Points[2].Value.Equal(decimal.NewFromFloat(0.09)))
	assert.True(t, analysis.Points[4].Value.Equal(decimal.NewFromFloat(0.13)),
		"Grid should end at the maximum, got %s", analysis.Points[4].Value)

	// 250k needs roughly 9.7% to reach the target over 25 years, so the
	// grid flips from insufficient to sufficient between 0.09 and 0.11.
	require.NotNil(t, analysis.FlipValue, "Sufficiency should flip inside this grid")
	assert.True(t, analysis.FlipValue.Equal(decimal.NewFromFloat(0.11)),
		"Expected the flip at 0.11, got %s", analysis.FlipValue)
	assert.Equal(t, 2, analysis.SufficientCount())
}

func TestAnalyzeParameterNoFlip(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(NewEngine())

	param := SweepParameter{
		Name:      "annual_return",
		BaseValue: decimal.NewFromFloat(0.05),
		MinValue:  decimal.NewFromFloat(0.04),
		MaxValue:  decimal.NewFromFloat(0.06),
		Steps:     3,
	}

	analysis, err := analyzer.AnalyzeParameter(baseInput(), param)
	require.NoError(t, err)

	assert.Nil(t, analysis.FlipValue, "A uniformly insufficient grid has no flip")
	assert.Equal(t, 0, analysis.SufficientCount())
}

func TestAnalyzeParameterSingleStep(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(NewEngine())

	param := SweepParameter{
		Name:      "monthly_expense",
		BaseValue: decimal.NewFromInt(4000),
		MinValue:  decimal.NewFromInt(2000),
		MaxValue:  decimal.NewFromInt(6000),
		Steps:     1,
	}

	analysis, err := analyzer.AnalyzeParameter(baseInput(), param)
	require.NoError(t, err)
	require.Len(t, analysis.Points, 1)

	assert.True(t, analysis.Points[0].Value.Equal(decimal.NewFromInt(4000)),
		"A single step collapses to the base value, got %s", analysis.Points[0].Value)
}

func TestAnalyzeParameterUnknownName(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(NewEngine())

	param := SweepParameter{
		Name:      "shoe_size",
		BaseValue: decimal.NewFromInt(42),
		MinValue:  decimal.NewFromInt(40),
		MaxValue:  decimal.NewFromInt(44),
		Steps:     3,
	}

	_, err := analyzer.AnalyzeParameter(baseInput(), param)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sweep parameter")
}

func TestAnalyzeParameterInvalidBase(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(NewEngine())
	input := baseInput()
	input.CurrentAge = -1

	param := SweepParameter{
		Name:      "annual_return",
		BaseValue: decimal.NewFromFloat(0.07),
		MinValue:  decimal.NewFromFloat(0.05),
		MaxValue:  decimal.NewFromFloat(0.09),
		Steps:     3,
	}

	_, err := analyzer.AnalyzeParameter(input, param)
	require.Error(t, err)
}

func TestSweepAroundClampsAtZero(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(NewEngine())

	analysis, err := analyzer.SweepAround(baseInput(), "inflation_rate", decimal.NewFromFloat(0.05), 5)
	require.NoError(t, err)
	require.Len(t, analysis.Points, 5)

	assert.True(t, analysis.Points[0].Value.IsZero(),
		"Inflation cannot go negative, grid should clamp at zero, got %s", analysis.Points[0].Value)
	assert.True(t, analysis.Points[4].Value.Equal(decimal.NewFromFloat(0.08)),
		"Upper bound should stay at base+spread, got %s", analysis.Points[4].Value)

	// At 0% inflation the 250k lump sum covers a 1.2M target; any real
	// inflation in this grid pushes the target out of reach.
	require.NotNil(t, analysis.FlipValue)
	assert.True(t, analysis.FlipValue.Equal(decimal.NewFromFloat(0.02)),
		"Expected the flip at 0.02, got %s", analysis.FlipValue)
	assert.Equal(t, 1, analysis.SufficientCount())
}

func TestSweepAroundAllowsNegativeReturns(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(NewEngine())
	input := baseInput()
	input.AnnualReturn = decimal.NewFromFloat(0.01)

	analysis, err := analyzer.SweepAround(input, "annual_return", decimal.NewFromFloat(0.03), 3)
	require.NoError(t, err)
	require.Len(t, analysis.Points, 3)

	assert.True(t, analysis.Points[0].Value.Equal(decimal.NewFromFloat(-0.02)),
		"Return sweeps may dip below zero, got %s", analysis.Points[0].Value)
}

func TestSweepableParameters(t *testing.T) {
	assert.Equal(t, []string{"annual_return", "inflation_rate", "monthly_expense", "current_investment"},
		SweepableParameters)
}
