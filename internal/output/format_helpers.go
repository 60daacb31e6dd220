package output

import (
	"github.com/shopspring/decimal"

	"planwise/pkg/money"
)

// FormatCurrency formats a decimal as whole dollars with separators. Kept
// here so it can be reused by multiple formatters and tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Format()
}

// FormatCurrencyCents formats a decimal as dollars and cents.
func FormatCurrencyCents(amount decimal.Decimal) string {
	return money.FromDecimal(amount).FormatCents()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
