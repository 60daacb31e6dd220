package calculation

import (
	"github.com/shopspring/decimal"

	"planwise/internal/domain"
)

const (
	// spendSearchSeed is the initial upper bracket for the exponential
	// search; spendSearchCeiling is the absolute cap, beyond which spend
	// is treated as effectively unlimited.
	spendSearchSeed    = 100_000
	spendSearchCeiling = 50_000_000

	// spendSearchIterations bounds the bisection. 2^34 comfortably
	// exceeds the search range, so the bracket narrows below one unit
	// without any convergence check that could plateau.
	spendSearchIterations = 34

	// depletionToleranceYears is how far short of life expectancy a
	// depletion may land and still count as lasting.
	depletionToleranceYears = 0.1
)

var two = decimal.NewFromInt(2)

// FindSustainableSpend bisects over the annual spend level for the largest
// today-dollar withdrawal whose projection does not deplete before
// lifeExpectancy. The spend in base is ignored; the solver supplies its own
// candidates. Spend is monotone in depletion age, which is what makes the
// bisection valid.
func (ce *CalculationEngine) FindSustainableSpend(base domain.ScenarioParameters, lifeExpectancy float64) decimal.Decimal {
	spend, _ := ce.findSustainableSpend(base, lifeExpectancy)
	return spend
}

// findSustainableSpend also reports whether the search ceiling was still
// feasible, i.e. the answer is "effectively unlimited" rather than exact.
func (ce *CalculationEngine) findSustainableSpend(base domain.ScenarioParameters, lifeExpectancy float64) (decimal.Decimal, bool) {
	lasts := func(spend decimal.Decimal) bool {
		p := base
		p.AnnualSpendToday = spend
		result := ce.Simulate(p)
		if result.DepletedAgeExact == nil {
			return true
		}
		return *result.DepletedAgeExact >= lifeExpectancy-depletionToleranceYears
	}

	// If nothing can be withdrawn without running out, the scenario is
	// infeasible rather than an error.
	if !lasts(decimal.Zero) {
		ce.Logger.Debugf("sustainable spend: zero spend depletes before %.1f, returning 0", lifeExpectancy)
		return decimal.Zero, false
	}

	// Grow the upper bracket exponentially, keeping the last feasible
	// level as the lower bound.
	ceiling := decimal.NewFromInt(spendSearchCeiling)
	lo := decimal.Zero
	hi := decimal.NewFromInt(spendSearchSeed)
	for lasts(hi) {
		lo = hi
		hi = hi.Mul(two)
		if hi.GreaterThanOrEqual(ceiling) {
			if lasts(ceiling) {
				ce.Logger.Debugf("sustainable spend: feasible at search ceiling %s", ceiling.StringFixed(0))
				return ceiling, true
			}
			hi = ceiling
			break
		}
	}

	// Invariant: lasts(lo) holds and lasts(hi) does not.
	for i := 0; i < spendSearchIterations; i++ {
		mid := lo.Add(hi).Div(two)
		if lasts(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo.Floor(), false
}
