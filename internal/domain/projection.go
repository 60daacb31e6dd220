package domain

import (
	"github.com/shopspring/decimal"
)

// TrajectoryPoint is one annual snapshot of the projected balance. Real
// balance is the nominal balance deflated by cumulative monthly inflation
// since the simulation start.
type TrajectoryPoint struct {
	Age            int             `json:"age"`
	NominalBalance decimal.Decimal `json:"nominal_balance"`
	RealBalance    decimal.Decimal `json:"real_balance"`
}

// ProjectionResult is the full output of one simulation run.
type ProjectionResult struct {
	// Rows holds the starting point plus one point per completed year.
	Rows []TrajectoryPoint `json:"rows"`

	EndNominal decimal.Decimal `json:"end_nominal"`
	EndReal    decimal.Decimal `json:"end_real"`

	// DepletedAge is the floor of the first fractional age at which the
	// balance reached zero; nil when the balance lasts the whole horizon.
	DepletedAge      *int     `json:"depleted_age,omitempty"`
	DepletedAgeExact *float64 `json:"depleted_age_exact,omitempty"`
}

// Depleted reports whether the balance ever hit zero within the horizon.
func (r ProjectionResult) Depleted() bool { return r.DepletedAgeExact != nil }

// ScenarioSummary pairs a named scenario with its projection outcome.
type ScenarioSummary struct {
	Name   string             `json:"name"`
	Params ScenarioParameters `json:"params"`
	Result ProjectionResult   `json:"result"`
}

// PlanComparison is the report-level aggregate: the standard scenario set
// plus the derived deltas presentation code renders.
type PlanComparison struct {
	Scenarios []ScenarioSummary `json:"scenarios"`

	// SustainableSpend is the maximum today-dollar annual withdrawal that
	// lasts to the plan's life expectancy under DIY fees.
	SustainableSpend decimal.Decimal `json:"sustainable_spend"`

	// SpendUnconstrained is set when the solver hit its search ceiling,
	// meaning spending is effectively unlimited at that ceiling.
	SpendUnconstrained bool `json:"spend_unconstrained"`

	// CostOfDelay is the nominal balance given up at retirement age by
	// delaying contributions, relative to starting now.
	CostOfDelay decimal.Decimal `json:"cost_of_delay"`

	// AdvisorDrag is the end-balance reduction of the advisor fee
	// structure relative to DIY, with the percentage relative to DIY.
	AdvisorDrag        decimal.Decimal `json:"advisor_drag"`
	AdvisorDragPercent decimal.Decimal `json:"advisor_drag_percent"`

	Assumptions []string `json:"assumptions"`
}

// ScenarioByName returns the named summary, or nil when absent.
func (pc *PlanComparison) ScenarioByName(name string) *ScenarioSummary {
	for i := range pc.Scenarios {
		if pc.Scenarios[i].Name == name {
			return &pc.Scenarios[i]
		}
	}
	return nil
}
