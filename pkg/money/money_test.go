package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{5, "$5"},
		{999, "$999"},
		{1000, "$1,000"},
		{1234, "$1,234"},
		{1234567, "$1,234,567"},
		{200000, "$200,000"},
		{1234.49, "$1,234"},
		{1234.51, "$1,235"},
		{-1234, "-$1,234"},
		{-1234567.89, "-$1,234,568"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.value).Format(), "value %v", tt.value)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$1234.56", New(1234.56).FormatCents())
	assert.Equal(t, "$0.00", New(0).FormatCents())
	assert.Equal(t, "$-12.30", New(-12.3).FormatCents())
}

func TestRound(t *testing.T) {
	// Banker's rounding on the half cent.
	assert.Equal(t, "10.12", New(10.125).Round().String())
	assert.Equal(t, "10.14", New(10.135).Round().String())
	assert.Equal(t, "10.13", New(10.126).Round().String())
}

func TestAnnualMonthly(t *testing.T) {
	m := New(1500)
	assert.True(t, m.Annual().Equal(decimal.NewFromInt(18000)))

	a := New(60000)
	assert.True(t, a.Monthly().Equal(decimal.NewFromInt(5000)))
}

func TestFromDecimal(t *testing.T) {
	d := decimal.NewFromFloat(42.5)
	assert.True(t, FromDecimal(d).Equal(d))
	assert.Equal(t, "42.50", FromDecimal(d).String())
}
