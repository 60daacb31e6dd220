package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"planwise/internal/domain"
)

// minNetAnnualRate floors net annual returns so a fee larger than the gross
// return cannot push the monthly multiplier negative.
const minNetAnnualRate = -0.99

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// monthlyRate converts an annual rate to its geometric monthly equivalent,
// (1+annual)^(1/12) - 1. Simple division would overstate compounding.
func monthlyRate(annual float64) float64 {
	if annual < minNetAnnualRate {
		annual = minNetAnnualRate
	}
	return math.Pow(1+annual, 1.0/12) - 1
}

// Simulate projects the account balance month by month over the scenario's
// horizon. It is pure and total: every input, however degenerate, yields a
// defined result.
//
// Contributions apply only before retirement and after the delay window.
// Withdrawals apply only after retirement and are the today-dollar spend
// inflated by compounded monthly inflation since retirement began. The flat
// fee is charged every month. The balance floors at zero: the first crossing
// is recorded as the depletion age and the floor is sticky thereafter.
func (ce *CalculationEngine) Simulate(params domain.ScenarioParameters) domain.ProjectionResult {
	p := params.Sanitized()

	months := int(math.Round(p.HorizonYears * 12))
	if months < 1 {
		months = 1
	}

	preNet := math.Max(minNetAnnualRate, p.PreAnnualGross-p.FeeAnnualPre)
	// The post-retirement input is a real rate; recover nominal by
	// compounding with inflation before the fee comes off.
	postNominalGross := (1+p.PostRealAnnualGross)*(1+p.InflationAnnual) - 1
	postNet := math.Max(minNetAnnualRate, postNominalGross-p.FeeAnnualPost)

	growPre := decimal.NewFromFloat(1 + monthlyRate(preNet))
	growPost := decimal.NewFromFloat(1 + monthlyRate(postNet))
	inflate := decimal.NewFromFloat(1 + monthlyRate(p.InflationAnnual))

	monthsToRetirement := int(math.Round((p.RetirementAge - p.CurrentAge) * 12))
	delayMonths := int(math.Round(p.DelayYears * 12))

	monthlySpendToday := p.AnnualSpendToday.Div(twelve)
	monthlyFixedFee := p.FixedFeeAnnual.Div(twelve)

	balance := p.StartAssets
	deflator := one    // cumulative inflation since simulation start
	spendFactor := one // cumulative inflation since retirement began

	startAge := int(math.Floor(p.CurrentAge))
	rows := []domain.TrajectoryPoint{{
		Age:            startAge,
		NominalBalance: balance,
		RealBalance:    balance,
	}}

	var depletedAge *int
	var depletedAgeExact *float64

	for m := 1; m <= months; m++ {
		preRetirement := m <= monthsToRetirement

		if preRetirement {
			balance = balance.Mul(growPre)
			if m > delayMonths {
				balance = balance.Add(p.MonthlySave)
			}
		} else {
			balance = balance.Mul(growPost)
			spendFactor = spendFactor.Mul(inflate)
			balance = balance.Sub(monthlySpendToday.Mul(spendFactor))
		}
		balance = balance.Sub(monthlyFixedFee)

		deflator = deflator.Mul(inflate)

		if balance.LessThanOrEqual(decimal.Zero) {
			if depletedAgeExact == nil {
				exact := p.CurrentAge + float64(m)/12
				floored := int(math.Floor(exact))
				depletedAgeExact = &exact
				depletedAge = &floored
			}
			balance = decimal.Zero
		}

		if m%12 == 0 {
			rows = append(rows, domain.TrajectoryPoint{
				Age:            startAge + m/12,
				NominalBalance: balance,
				RealBalance:    balance.Div(deflator),
			})
		}
	}

	return domain.ProjectionResult{
		Rows:             rows,
		EndNominal:       balance,
		EndReal:          balance.Div(deflator),
		DepletedAge:      depletedAge,
		DepletedAgeExact: depletedAgeExact,
	}
}
