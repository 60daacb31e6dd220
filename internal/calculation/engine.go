package calculation

import (
	"fmt"

	"planwise/internal/domain"
)

// Scenario names used by the standard comparison set.
const (
	ScenarioStartNow = "Start now"
	ScenarioDelayed  = "Delayed start"
	ScenarioAdvisor  = "Advisor fees"
	ScenarioNoFees   = "No fees"
)

// CalculationEngine runs projections and the searches built on them. It
// holds no mutable state between calls; every simulation is independent.
type CalculationEngine struct {
	Debug  bool
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunPlan produces the standard comparison set from one plan: start now vs
// delayed start under DIY fees, advisor fees, and a no-fee baseline, plus
// the sustainable spend solve and the derived deltas between scenarios.
func (ce *CalculationEngine) RunPlan(plan *domain.Plan) (*domain.PlanComparison, error) {
	in := plan.Household
	cmp := plan.Comparison

	if in.RetirementAge <= in.CurrentAge {
		return nil, fmt.Errorf("retirement age (%.1f) must be greater than current age (%.1f)",
			in.RetirementAge, in.CurrentAge)
	}

	diy := domain.ScenarioOverride{
		FeeAnnualPre:  cmp.DIYFeeAnnual,
		FeeAnnualPost: cmp.DIYFeeAnnual,
	}
	delayed := diy
	delayed.DelayYears = cmp.DelayYears
	advisor := domain.ScenarioOverride{
		FeeAnnualPre:   cmp.AdvisorFeeAnnual,
		FeeAnnualPost:  cmp.AdvisorFeeAnnual,
		FixedFeeAnnual: cmp.AdvisorFixedFee,
	}

	scenarios := []domain.ScenarioSummary{
		ce.runScenario(ScenarioStartNow, in, diy),
		ce.runScenario(ScenarioDelayed, in, delayed),
		ce.runScenario(ScenarioAdvisor, in, advisor),
		ce.runScenario(ScenarioNoFees, in, domain.ScenarioOverride{}),
	}

	startNow := scenarios[0].Result
	delayedRes := scenarios[1].Result
	advisorRes := scenarios[2].Result

	spendBase := in.ScenarioParameters(diy)
	sustainable, unconstrained := ce.findSustainableSpend(spendBase, in.LifeExpectancy)

	comparison := &domain.PlanComparison{
		Scenarios:          scenarios,
		SustainableSpend:   sustainable,
		SpendUnconstrained: unconstrained,
		CostOfDelay:        BalanceGapAtAge(startNow, delayedRes, in.RetirementAge),
		AdvisorDrag:        startNow.EndNominal.Sub(advisorRes.EndNominal),
		AdvisorDragPercent: PercentDrag(startNow.EndNominal, advisorRes.EndNominal),
		Assumptions:        describeAssumptions(in, cmp),
	}

	if ce.Debug {
		ce.Logger.Debugf("plan comparison: sustainable spend %s, cost of delay %s, advisor drag %s (%s%%)",
			comparison.SustainableSpend.StringFixed(2),
			comparison.CostOfDelay.StringFixed(2),
			comparison.AdvisorDrag.StringFixed(2),
			comparison.AdvisorDragPercent.StringFixed(2))
	}

	return comparison, nil
}

func (ce *CalculationEngine) runScenario(name string, in domain.PlanInput, ov domain.ScenarioOverride) domain.ScenarioSummary {
	params := in.ScenarioParameters(ov)
	result := ce.Simulate(params)
	if ce.Debug {
		ce.Logger.Debugf("scenario %q: end nominal %s, end real %s, depleted=%v",
			name, result.EndNominal.StringFixed(2), result.EndReal.StringFixed(2), result.Depleted())
	}
	return domain.ScenarioSummary{Name: name, Params: params, Result: result}
}

// describeAssumptions renders the plan's inputs as human-readable lines for
// report output.
func describeAssumptions(in domain.PlanInput, cmp domain.ComparisonAssumptions) []string {
	return []string{
		fmt.Sprintf("Projection from age %.1f to %.1f, retiring at %.1f", in.CurrentAge, in.LifeExpectancy, in.RetirementAge),
		fmt.Sprintf("Pre-retirement return: %.2f%% gross per year", in.PreAnnualGross*100),
		fmt.Sprintf("Post-retirement return: %.2f%% real per year", in.PostRealAnnualGross*100),
		fmt.Sprintf("Inflation: %.2f%% per year", in.InflationAnnual*100),
		fmt.Sprintf("DIY fee %.2f%%, advisor fee %.2f%% plus %s fixed per year",
			cmp.DIYFeeAnnual*100, cmp.AdvisorFeeAnnual*100, cmp.AdvisorFixedFee.StringFixed(0)),
		fmt.Sprintf("Delayed-start scenario waits %.1f years before contributing", cmp.DelayYears),
	}
}
