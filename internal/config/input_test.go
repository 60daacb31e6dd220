package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlanYAML = `plan:
  current_age: 40
  retirement_age: 60
  life_expectancy: 90
  start_assets: 200000
  monthly_save: 1500
  pre_retirement_return: 0.08
  post_retirement_real_return: 0.025
  inflation: 0.02
  annual_spend_today: 60000
comparison:
  delay_years: 3
  diy_fee: 0.002
  advisor_fee: 0.01
  advisor_fixed_fee: 1200
`

func writePlanFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.LoadFromFile(writePlanFile(t, validPlanYAML))
	require.NoError(t, err)

	assert.Equal(t, 40.0, plan.Household.CurrentAge)
	assert.Equal(t, 60.0, plan.Household.RetirementAge)
	assert.Equal(t, 90.0, plan.Household.LifeExpectancy)
	assert.True(t, plan.Household.StartAssets.Equal(decimal.NewFromInt(200000)))
	assert.True(t, plan.Household.MonthlySave.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 0.08, plan.Household.PreAnnualGross)
	assert.Equal(t, 0.025, plan.Household.PostRealAnnualGross)
	assert.Equal(t, 3.0, plan.Comparison.DelayYears)
	assert.True(t, plan.Comparison.AdvisorFixedFee.Equal(decimal.NewFromInt(1200)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileBadYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writePlanFile(t, "plan: [not: valid"))
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.LoadFromFile(writePlanFile(t, `plan:
  current_age: 40
  retirement_age: 60
  start_assets: 100000
  monthly_save: 1000
  pre_retirement_return: 0.07
  post_retirement_real_return: 0.02
  inflation: 0.02
  annual_spend_today: 40000
`))
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultLifeExpectancy), plan.Household.LifeExpectancy)
	assert.Equal(t, float64(DefaultDelayYears), plan.Comparison.DelayYears)
	assert.Equal(t, DefaultDIYFee, plan.Comparison.DIYFeeAnnual)
	assert.Equal(t, DefaultAdvisorFee, plan.Comparison.AdvisorFeeAnnual)
}

func TestValidatePlan(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name string
		yaml string
	}{
		{"retirement before current age", `plan:
  current_age: 65
  retirement_age: 60
  life_expectancy: 90
`},
		{"negative assets", `plan:
  current_age: 40
  retirement_age: 60
  life_expectancy: 90
  start_assets: -5
`},
		{"negative savings", `plan:
  current_age: 40
  retirement_age: 60
  life_expectancy: 90
  monthly_save: -100
`},
		{"extreme inflation", `plan:
  current_age: 40
  retirement_age: 60
  life_expectancy: 90
  inflation: 0.5
`},
		{"life expectancy before current age", `plan:
  current_age: 60
  retirement_age: 65
  life_expectancy: 50
`},
		{"fee above one", `plan:
  current_age: 40
  retirement_age: 60
  life_expectancy: 90
comparison:
  diy_fee: 1.5
`},
		{"negative delay", `plan:
  current_age: 40
  retirement_age: 60
  life_expectancy: 90
comparison:
  delay_years: -1
`},
		{"negative fixed fee", `plan:
  current_age: 40
  retirement_age: 60
  life_expectancy: 90
comparison:
  advisor_fixed_fee: -100
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.LoadFromFile(writePlanFile(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestExamplePlanIsValid(t *testing.T) {
	parser := NewInputParser()
	plan := parser.CreateExamplePlan()
	assert.NoError(t, parser.ValidatePlan(plan))
}

func TestExamplePlanRoundTrip(t *testing.T) {
	parser := NewInputParser()
	data, err := parser.WriteExamplePlan()
	require.NoError(t, err)

	plan, err := parser.LoadFromFile(writePlanFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, parser.CreateExamplePlan().Household.CurrentAge, plan.Household.CurrentAge)
	assert.True(t, plan.Household.StartAssets.Equal(decimal.NewFromInt(200000)))
}
