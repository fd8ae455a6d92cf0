package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReturnScheduleEffectiveRate(t *testing.T) {
	tests := []struct {
		name     string
		initial  decimal.Decimal
		decrease decimal.Decimal
		years    int
		expected decimal.Decimal
	}{
		{
			name:     "zero years returns initial rate",
			initial:  decimal.NewFromFloat(0.07),
			decrease: decimal.NewFromFloat(0.001),
			years:    0,
			expected: decimal.NewFromFloat(0.07),
		},
		{
			name:     "one year has no decline yet",
			initial:  decimal.NewFromFloat(0.07),
			decrease: decimal.NewFromFloat(0.001),
			years:    1,
			expected: decimal.NewFromFloat(0.07), // (0.07 + 0.07) / 2
		},
		{
			name:     "twenty-five year glide",
			initial:  decimal.NewFromFloat(0.07),
			decrease: decimal.NewFromFloat(0.001),
			years:    25,
			expected: decimal.NewFromFloat(0.058), // (0.07 + 0.046) / 2
		},
		{
			name:     "zero decrease keeps the rate flat",
			initial:  decimal.NewFromFloat(0.07),
			decrease: decimal.Zero,
			years:    40,
			expected: decimal.NewFromFloat(0.07),
		},
		{
			name:     "final year floored at zero",
			initial:  decimal.NewFromFloat(0.02),
			decrease: decimal.NewFromFloat(0.01),
			years:    10,
			expected: decimal.NewFromFloat(0.01), // final max(0.02-9*0.01, 0)=0, avg 0.01
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := ReturnSchedule{InitialRate: tt.initial, AnnualDecrease: tt.decrease}
			result := schedule.EffectiveRate(tt.years)
			assert.True(t, result.Equal(tt.expected),
				"Expected %s, got %s", tt.expected, result)
		})
	}
}

func TestReturnScheduleEffectiveRateDeclines(t *testing.T) {
	schedule := ReturnSchedule{
		InitialRate:    decimal.NewFromFloat(0.07),
		AnnualDecrease: decimal.NewFromFloat(0.002),
	}
	floor := decimal.NewFromFloat(0.035) // (0.07 + 0) / 2

	previous := schedule.EffectiveRate(0)
	for years := 1; years <= 60; years++ {
		current := schedule.EffectiveRate(years)
		assert.True(t, current.LessThanOrEqual(previous),
			"Effective rate should never rise with horizon: %s at %d years after %s", current, years, previous)
		assert.True(t, current.GreaterThanOrEqual(floor),
			"Effective rate should never drop below half the initial rate, got %s", current)
		previous = current
	}

	// A long enough horizon bottoms out at half the initial rate.
	assert.True(t, schedule.EffectiveRate(60).Equal(floor),
		"Expected %s, got %s", floor, schedule.EffectiveRate(60))
}

func TestReturnScheduleRateAfter(t *testing.T) {
	schedule := ReturnSchedule{
		InitialRate:    decimal.NewFromFloat(0.07),
		AnnualDecrease: decimal.NewFromFloat(0.001),
	}

	assert.True(t, schedule.RateAfter(0).Equal(decimal.NewFromFloat(0.07)))
	assert.True(t, schedule.RateAfter(5).Equal(decimal.NewFromFloat(0.065)),
		"0.07 - 5*0.001 should give 0.065")
	assert.True(t, schedule.RateAfter(100).Equal(decimal.Zero),
		"Rate should floor at zero, never go negative")
}

func TestReturnScheduleAdvance(t *testing.T) {
	schedule := ReturnSchedule{
		InitialRate:    decimal.NewFromFloat(0.07),
		AnnualDecrease: decimal.NewFromFloat(0.001),
	}

	advanced := schedule.Advance(5)
	assert.True(t, advanced.InitialRate.Equal(decimal.NewFromFloat(0.065)),
		"Advanced schedule should start where the rate left off")
	assert.True(t, advanced.AnnualDecrease.Equal(schedule.AnnualDecrease),
		"Advancing should not change the pace of decline")

	// Advancing in two steps lands where one combined step does.
	assert.True(t, schedule.Advance(3).Advance(2).InitialRate.Equal(advanced.InitialRate))
}

func TestFlatSchedule(t *testing.T) {
	flat := FlatSchedule(decimal.NewFromFloat(0.07))
	assert.True(t, flat.EffectiveRate(40).Equal(decimal.NewFromFloat(0.07)),
		"A flat schedule's effective rate should be horizon-independent")
	assert.True(t, flat.RateAfter(40).Equal(decimal.NewFromFloat(0.07)))
}
