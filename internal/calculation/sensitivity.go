package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"planwise/internal/domain"
)

// SensitivityGrid defines the return-rate combinations a sensitivity sweep
// visits. Bounds are inclusive annual rates (fractions).
type SensitivityGrid struct {
	PreReturnMin  float64 `json:"pre_return_min" yaml:"pre_return_min"`
	PreReturnMax  float64 `json:"pre_return_max" yaml:"pre_return_max"`
	PostReturnMin float64 `json:"post_return_min" yaml:"post_return_min"`
	PostReturnMax float64 `json:"post_return_max" yaml:"post_return_max"`
	Step          float64 `json:"step" yaml:"step"`
}

// SensitivityPoint holds a single grid cell's outcome.
type SensitivityPoint struct {
	PreReturn        float64         `json:"pre_return"`
	PostRealReturn   float64         `json:"post_real_return"`
	SustainableSpend decimal.Decimal `json:"sustainable_spend"`
	Unconstrained    bool            `json:"unconstrained"`
}

// RunSensitivityAnalysis re-solves the sustainable spend across a grid of
// pre- and post-retirement return assumptions, holding everything else in
// base fixed. Cells run in row-major order, pre-return outermost.
func (ce *CalculationEngine) RunSensitivityAnalysis(base domain.ScenarioParameters, lifeExpectancy float64, grid SensitivityGrid) ([]SensitivityPoint, error) {
	if grid.Step <= 0 {
		return nil, fmt.Errorf("sensitivity step must be positive, got %g", grid.Step)
	}
	if grid.PreReturnMax < grid.PreReturnMin || grid.PostReturnMax < grid.PostReturnMin {
		return nil, fmt.Errorf("sensitivity bounds are inverted")
	}

	points := make([]SensitivityPoint, 0)

	// The epsilon keeps the inclusive upper bound reachable despite
	// accumulated float error in the loop variable.
	eps := grid.Step / 1000
	for pre := grid.PreReturnMin; pre <= grid.PreReturnMax+eps; pre += grid.Step {
		for post := grid.PostReturnMin; post <= grid.PostReturnMax+eps; post += grid.Step {
			params := base
			params.PreAnnualGross = pre
			params.PostRealAnnualGross = post

			spend, unconstrained := ce.findSustainableSpend(params, lifeExpectancy)
			points = append(points, SensitivityPoint{
				PreReturn:        pre,
				PostRealReturn:   post,
				SustainableSpend: spend,
				Unconstrained:    unconstrained,
			})
		}
	}

	ce.Logger.Debugf("sensitivity sweep produced %d points", len(points))
	return points, nil
}
