package calculation

import (
	"github.com/shopspring/decimal"

	"planwise/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// BalanceAtAge returns the nominal balance at the nearest recorded row at or
// after the given age. When every row precedes the age, the last row wins;
// an empty trajectory yields zero.
func BalanceAtAge(result domain.ProjectionResult, age float64) decimal.Decimal {
	if len(result.Rows) == 0 {
		return decimal.Zero
	}
	for _, row := range result.Rows {
		if float64(row.Age) >= age {
			return row.NominalBalance
		}
	}
	return result.Rows[len(result.Rows)-1].NominalBalance
}

// BalanceGapAtAge is the nominal difference between two trajectories at the
// given age: positive when the baseline is ahead.
func BalanceGapAtAge(baseline, other domain.ProjectionResult, age float64) decimal.Decimal {
	return BalanceAtAge(baseline, age).Sub(BalanceAtAge(other, age))
}

// PercentDrag is the end-balance reduction of compare relative to baseline,
// in percent. A non-positive baseline makes the ratio meaningless; it
// reports zero drag instead.
func PercentDrag(baseline, compare decimal.Decimal) decimal.Decimal {
	if baseline.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return baseline.Sub(compare).Div(baseline).Mul(hundred)
}
