// Package money wraps decimal amounts with display helpers so formatting
// decisions live in one place.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount. The zero value is $0.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal amount.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// String returns the amount fixed to cents, no symbol.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as dollars with thousands separators, rounded
// to whole dollars ("$1,234,567").
func (m Money) Format() string {
	neg := m.Decimal.IsNegative()
	s := m.Decimal.Abs().Round(0).StringFixed(0)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatCents renders the amount as dollars and cents ("$1234.56").
func (m Money) FormatCents() string {
	return "$" + m.String()
}
