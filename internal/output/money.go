package output

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO 4217 code used when no currency is configured
const DefaultCurrency = "INR"

// Money wraps a go-money value built from a decimal amount in major units
type Money struct {
	value *money.Money
}

// NewMoney converts a decimal amount into Money in the given currency.
// Unknown currency codes yield an empty Money.
func NewMoney(amount decimal.Decimal, currency string) Money {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Money{}
	}

	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return Money{money.New(minor.IntPart(), currency)}
}

// String returns the locale-formatted representation
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

// SignedString returns the representation with an explicit plus on gains
func (m Money) SignedString() string {
	if m.value == nil {
		return ""
	}
	if m.value.IsPositive() {
		return "+" + m.value.Display()
	}
	return m.value.Display()
}

// FormatCurrency renders an amount in the given display currency, falling
// back to a plain fixed-point string for unknown codes
func FormatCurrency(amount decimal.Decimal, currency string) string {
	m := NewMoney(amount, currency)
	if m.value == nil {
		return amount.StringFixed(2)
	}
	return m.String()
}

// FormatCurrencySigned is FormatCurrency with an explicit plus on gains
func FormatCurrencySigned(amount decimal.Decimal, currency string) string {
	m := NewMoney(amount, currency)
	if m.value == nil {
		if amount.IsPositive() {
			return "+" + amount.StringFixed(2)
		}
		return amount.StringFixed(2)
	}
	return m.SignedString()
}

// FormatPercentage renders a fractional rate, 0.07 becoming "7.00%"
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
