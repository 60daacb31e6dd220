package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSensitivityAnalysisGridShape(t *testing.T) {
	ce := NewCalculationEngine()
	grid := SensitivityGrid{
		PreReturnMin:  0.05,
		PreReturnMax:  0.07,
		PostReturnMin: 0.02,
		PostReturnMax: 0.03,
		Step:          0.01,
	}

	points, err := ce.RunSensitivityAnalysis(baseParams(), 90, grid)
	require.NoError(t, err)
	assert.Len(t, points, 6, "3 pre-return levels x 2 post-return levels")

	// Row-major order, pre-return outermost.
	assert.InDelta(t, 0.05, points[0].PreReturn, 1e-12)
	assert.InDelta(t, 0.02, points[0].PostRealReturn, 1e-12)
	assert.InDelta(t, 0.05, points[1].PreReturn, 1e-12)
	assert.InDelta(t, 0.03, points[1].PostRealReturn, 1e-12)
	assert.InDelta(t, 0.07, points[5].PreReturn, 1e-12)
}

func TestRunSensitivityAnalysisSpendGrowsWithReturns(t *testing.T) {
	ce := NewCalculationEngine()
	grid := SensitivityGrid{
		PreReturnMin:  0.04,
		PreReturnMax:  0.08,
		PostReturnMin: 0.02,
		PostReturnMax: 0.02,
		Step:          0.02,
	}

	points, err := ce.RunSensitivityAnalysis(baseParams(), 90, grid)
	require.NoError(t, err)
	require.Len(t, points, 3)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].SustainableSpend.GreaterThanOrEqual(points[i-1].SustainableSpend),
			"higher pre-retirement return lowered sustainable spend at index %d", i)
	}
}

func TestRunSensitivityAnalysisRejectsBadGrids(t *testing.T) {
	ce := NewCalculationEngine()

	_, err := ce.RunSensitivityAnalysis(baseParams(), 90, SensitivityGrid{Step: 0})
	assert.Error(t, err)

	_, err = ce.RunSensitivityAnalysis(baseParams(), 90, SensitivityGrid{
		PreReturnMin: 0.08, PreReturnMax: 0.04, Step: 0.01,
	})
	assert.Error(t, err)
}
