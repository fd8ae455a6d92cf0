package tui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmenon/coastfire/internal/config"
)

func TestNewFormModel_Prefills(t *testing.T) {
	form := newFormModel(ModeStatus, config.DefaultScenario())

	require.Len(t, form.inputs, 7, "Should have the seven shared fields")
	assert.Equal(t, "35", form.inputs[fieldCurrentAge].Value(), "Should prefill the current age")
	assert.Equal(t, "7", form.inputs[fieldAnnualReturn].Value(), "Should show the return as a whole percent")
	assert.Equal(t, "0.1", form.inputs[fieldReturnDecrease].Value(), "Should show the decrease as a whole percent")
	assert.Equal(t, "3", form.inputs[fieldInflation].Value(), "Should show inflation as a whole percent")
}

func TestNewFormModel_ExtraField(t *testing.T) {
	plan := newFormModel(ModePlan, config.DefaultScenario())
	require.Len(t, plan.inputs, 8, "Should add the coast age field")
	assert.Equal(t, "Stop deposits at age", plan.labels[fieldExtra], "Should label the coast age field")
	assert.Equal(t, "40", plan.inputs[fieldExtra].Value(), "Should prefill the coast age")

	search := newFormModel(ModeCoastAge, config.DefaultScenario())
	require.Len(t, search.inputs, 8, "Should add the deposit field")
	assert.Equal(t, "Monthly deposit", search.labels[fieldExtra], "Should label the deposit field")
	assert.Equal(t, "25000", search.inputs[fieldExtra].Value(), "Should prefill the deposit")
}

func TestFormModel_Parse(t *testing.T) {
	form := newFormModel(ModeCoastAge, config.DefaultScenario())

	values, err := form.parse()
	require.NoError(t, err, "Should parse the prefilled form")

	assert.Equal(t, 35, values.input.CurrentAge, "Should parse the current age")
	assert.Equal(t, 60, values.input.RetirementAge, "Should parse the retirement age")
	assert.True(t, values.input.CurrentInvestment.Equal(decimal.NewFromInt(250000)), "Should parse the investment")
	assert.True(t, values.input.AnnualReturn.Equal(decimal.NewFromFloat(0.07)), "Should convert the return percent to a fraction")
	assert.True(t, values.input.InflationRate.Equal(decimal.NewFromFloat(0.03)), "Should convert the inflation percent to a fraction")
	assert.True(t, values.schedule.AnnualDecrease.Equal(decimal.NewFromFloat(0.001)), "Should convert the decrease percent to a fraction")
	assert.True(t, values.deposit.Equal(decimal.NewFromInt(25000)), "Should parse the deposit")
}

func TestFormModel_Parse_CoastAge(t *testing.T) {
	form := newFormModel(ModePlan, config.DefaultScenario())

	values, err := form.parse()
	require.NoError(t, err, "Should parse the prefilled form")
	assert.Equal(t, 40, values.coastAge, "Should parse the chosen coast age")
}

func TestFormModel_Parse_BadNumber(t *testing.T) {
	form := newFormModel(ModeStatus, config.DefaultScenario())
	form.inputs[fieldCurrentAge].SetValue("abc")

	_, err := form.parse()
	require.Error(t, err, "Should reject a non-numeric age")
	assert.Contains(t, err.Error(), "current age must be a whole number", "Should name the field")
}

func TestFormModel_Parse_InvalidInput(t *testing.T) {
	form := newFormModel(ModeStatus, config.DefaultScenario())
	form.inputs[fieldCurrentAge].SetValue("70")

	_, err := form.parse()
	assert.Error(t, err, "Should surface domain validation failures")
}
