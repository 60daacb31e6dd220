package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// ScenarioParameters is the complete input to one projection run. A value is
// built fresh per simulation and never mutated; ages and rates are plain
// floats, money amounts are decimals.
type ScenarioParameters struct {
	CurrentAge    float64 `json:"current_age" yaml:"current_age"`
	RetirementAge float64 `json:"retirement_age" yaml:"retirement_age"`

	// HorizonYears is how long the simulation runs, normally derived as
	// max(1, lifeExpectancy - currentAge).
	HorizonYears float64 `json:"horizon_years" yaml:"horizon_years"`

	StartAssets decimal.Decimal `json:"start_assets" yaml:"start_assets"`

	// MonthlySave is contributed each month before retirement, after any
	// initial delay window.
	MonthlySave decimal.Decimal `json:"monthly_save" yaml:"monthly_save"`
	DelayYears  float64         `json:"delay_years" yaml:"delay_years"`

	// PreAnnualGross is the nominal annual return before retirement.
	// PostRealAnnualGross is expressed relative to inflation; the engine
	// compounds it with InflationAnnual to recover a nominal rate.
	PreAnnualGross      float64 `json:"pre_annual_gross" yaml:"pre_annual_gross"`
	PostRealAnnualGross float64 `json:"post_real_annual_gross" yaml:"post_real_annual_gross"`
	InflationAnnual     float64 `json:"inflation_annual" yaml:"inflation_annual"`

	// AnnualSpendToday is the withdrawal need in today's purchasing power,
	// inflated forward monthly once retirement begins.
	AnnualSpendToday decimal.Decimal `json:"annual_spend_today" yaml:"annual_spend_today"`

	// Percentage fees are subtracted from gross returns; the fixed fee is
	// charged monthly regardless of balance.
	FeeAnnualPre   float64         `json:"fee_annual_pre" yaml:"fee_annual_pre"`
	FeeAnnualPost  float64         `json:"fee_annual_post" yaml:"fee_annual_post"`
	FixedFeeAnnual decimal.Decimal `json:"fixed_fee_annual" yaml:"fixed_fee_annual"`
}

// sanitizeFloat replaces NaN and infinities with the fallback so degenerate
// input can never propagate into the projection arithmetic.
func sanitizeFloat(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Sanitized returns a copy with every non-finite float replaced by zero.
// Decimal fields cannot hold non-finite values, so they pass through.
func (p ScenarioParameters) Sanitized() ScenarioParameters {
	p.CurrentAge = sanitizeFloat(p.CurrentAge, 0)
	p.RetirementAge = sanitizeFloat(p.RetirementAge, 0)
	p.HorizonYears = sanitizeFloat(p.HorizonYears, 0)
	p.DelayYears = sanitizeFloat(p.DelayYears, 0)
	p.PreAnnualGross = sanitizeFloat(p.PreAnnualGross, 0)
	p.PostRealAnnualGross = sanitizeFloat(p.PostRealAnnualGross, 0)
	p.InflationAnnual = sanitizeFloat(p.InflationAnnual, 0)
	p.FeeAnnualPre = sanitizeFloat(p.FeeAnnualPre, 0)
	p.FeeAnnualPost = sanitizeFloat(p.FeeAnnualPost, 0)
	return p
}

// PlanInput holds the household's base assumptions from which every
// comparison scenario is derived.
type PlanInput struct {
	CurrentAge     float64 `json:"current_age" yaml:"current_age"`
	RetirementAge  float64 `json:"retirement_age" yaml:"retirement_age"`
	LifeExpectancy float64 `json:"life_expectancy" yaml:"life_expectancy"`

	StartAssets decimal.Decimal `json:"start_assets" yaml:"start_assets"`
	MonthlySave decimal.Decimal `json:"monthly_save" yaml:"monthly_save"`

	PreAnnualGross      float64 `json:"pre_retirement_return" yaml:"pre_retirement_return"`
	PostRealAnnualGross float64 `json:"post_retirement_real_return" yaml:"post_retirement_real_return"`
	InflationAnnual     float64 `json:"inflation" yaml:"inflation"`

	AnnualSpendToday decimal.Decimal `json:"annual_spend_today" yaml:"annual_spend_today"`
}

// ScenarioOverride selects what varies between comparison scenarios. All
// scenario variants are produced by one builder rather than re-specifying
// the full parameter set per variant.
type ScenarioOverride struct {
	DelayYears     float64
	FeeAnnualPre   float64
	FeeAnnualPost  float64
	FixedFeeAnnual decimal.Decimal

	// AnnualSpend replaces the plan's spend when non-nil (the solver uses
	// this to probe candidate spend levels).
	AnnualSpend *decimal.Decimal
}

// ScenarioParameters builds a complete, sanitized parameter set from the
// plan plus one override tuple.
func (in PlanInput) ScenarioParameters(ov ScenarioOverride) ScenarioParameters {
	spend := in.AnnualSpendToday
	if ov.AnnualSpend != nil {
		spend = *ov.AnnualSpend
	}
	horizon := in.LifeExpectancy - in.CurrentAge
	if horizon < 1 {
		horizon = 1
	}
	p := ScenarioParameters{
		CurrentAge:          in.CurrentAge,
		RetirementAge:       in.RetirementAge,
		HorizonYears:        horizon,
		StartAssets:         in.StartAssets,
		MonthlySave:         in.MonthlySave,
		DelayYears:          ov.DelayYears,
		PreAnnualGross:      in.PreAnnualGross,
		PostRealAnnualGross: in.PostRealAnnualGross,
		InflationAnnual:     in.InflationAnnual,
		AnnualSpendToday:    spend,
		FeeAnnualPre:        ov.FeeAnnualPre,
		FeeAnnualPost:       ov.FeeAnnualPost,
		FixedFeeAnnual:      ov.FixedFeeAnnual,
	}
	return p.Sanitized()
}

// ComparisonAssumptions configures the standard comparison set: how long a
// procrastinator waits before saving, and the two fee structures.
type ComparisonAssumptions struct {
	DelayYears       float64         `json:"delay_years" yaml:"delay_years"`
	DIYFeeAnnual     float64         `json:"diy_fee" yaml:"diy_fee"`
	AdvisorFeeAnnual float64         `json:"advisor_fee" yaml:"advisor_fee"`
	AdvisorFixedFee  decimal.Decimal `json:"advisor_fixed_fee" yaml:"advisor_fixed_fee"`
}

// Plan is the top-level document parsed from a plan file.
type Plan struct {
	Household  PlanInput             `json:"plan" yaml:"plan"`
	Comparison ComparisonAssumptions `json:"comparison" yaml:"comparison"`
}
