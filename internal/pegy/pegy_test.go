package pegy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		pe       float64
		growth   float64
		dividend float64
		expected string
	}{
		{
			name:     "high growth bank",
			pe:       8.26,
			growth:   89.06,
			dividend: 2.72,
			expected: "0.0899",
		},
		{
			name:     "steady consumer stock",
			pe:       22.50,
			growth:   10.20,
			dividend: 3.10,
			expected: "1.6791",
		},
		{
			name:     "expensive defensive stock",
			pe:       48.5,
			growth:   7.2,
			dividend: 0.9,
			expected: "5.9146",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, ok := Ratio(
				decimal.NewFromFloat(tt.pe),
				decimal.NewFromFloat(tt.growth),
				decimal.NewFromFloat(tt.dividend),
				DefaultBuffer,
			)

			assert.True(t, ok, "Should be defined")
			assert.Equal(t, tt.expected, ratio.StringFixed(4), "Should round to four places")
		})
	}
}

func TestRatio_RoundsHalfEven(t *testing.T) {
	// 0.24690 / 2.0 = 0.12345, which ties at the fourth place and rounds
	// down to the even digit. 0.24710 / 2.0 = 0.12355 ties and rounds up.
	down, ok := Ratio(decimal.NewFromFloat(0.2469), decimal.NewFromFloat(1.0), decimal.NewFromFloat(0.9), DefaultBuffer)
	assert.True(t, ok, "Should be defined")
	assert.Equal(t, "0.1234", down.StringFixed(4), "Should round the tie to the even digit")

	up, ok := Ratio(decimal.NewFromFloat(0.2471), decimal.NewFromFloat(1.0), decimal.NewFromFloat(0.9), DefaultBuffer)
	assert.True(t, ok, "Should be defined")
	assert.Equal(t, "0.1236", up.StringFixed(4), "Should round the tie to the even digit")
}

func TestRatio_UndefinedForNonPositivePE(t *testing.T) {
	_, ok := Ratio(decimal.Zero, decimal.NewFromFloat(10), decimal.NewFromFloat(2), DefaultBuffer)
	assert.False(t, ok, "Should be undefined for zero PE")

	_, ok = Ratio(decimal.NewFromFloat(-5), decimal.NewFromFloat(10), decimal.NewFromFloat(2), DefaultBuffer)
	assert.False(t, ok, "Should be undefined for negative PE")
}

func TestRatio_UndefinedForNonPositiveDenominator(t *testing.T) {
	_, ok := Ratio(decimal.NewFromFloat(15), decimal.NewFromFloat(-5), decimal.NewFromFloat(2), DefaultBuffer)
	assert.False(t, ok, "Should be undefined when losses swamp the yield")

	// Growth and dividend cancel the buffer exactly
	_, ok = Ratio(decimal.NewFromFloat(15), decimal.NewFromFloat(-2), decimal.NewFromFloat(1.9), DefaultBuffer)
	assert.False(t, ok, "Should be undefined for a zero denominator")
}

func TestRatio_BufferRescuesZeroDenominator(t *testing.T) {
	// With no growth and no dividend the buffer alone keeps the ratio defined
	ratio, ok := Ratio(decimal.NewFromFloat(2), decimal.Zero, decimal.Zero, DefaultBuffer)

	assert.True(t, ok, "Should be defined thanks to the buffer")
	assert.Equal(t, "20.0000", ratio.StringFixed(4), "Should divide by the buffer alone")
}
