package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"planwise/internal/domain"
)

// Default assumptions applied when a plan file omits optional fields.
const (
	DefaultLifeExpectancy = 90
	DefaultDelayYears     = 3
	DefaultDIYFee         = 0.002
	DefaultAdvisorFee     = 0.01
)

// InputParser handles loading and validating plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file, applies defaults, and
// validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&plan)

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ApplyDefaults fills optional fields a plan file may omit.
func (ip *InputParser) ApplyDefaults(plan *domain.Plan) {
	if plan.Household.LifeExpectancy == 0 {
		plan.Household.LifeExpectancy = DefaultLifeExpectancy
	}
	if plan.Comparison.DelayYears == 0 {
		plan.Comparison.DelayYears = DefaultDelayYears
	}
	if plan.Comparison.DIYFeeAnnual == 0 {
		plan.Comparison.DIYFeeAnnual = DefaultDIYFee
	}
	if plan.Comparison.AdvisorFeeAnnual == 0 {
		plan.Comparison.AdvisorFeeAnnual = DefaultAdvisorFee
	}
}

// ValidatePlan validates the loaded plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateHousehold(&plan.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}
	if err := ip.validateComparison(&plan.Comparison); err != nil {
		return fmt.Errorf("comparison validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateHousehold(in *domain.PlanInput) error {
	if in.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	if in.RetirementAge <= in.CurrentAge {
		return fmt.Errorf("retirement age must be greater than current age")
	}
	if in.LifeExpectancy <= in.CurrentAge {
		return fmt.Errorf("life expectancy must be greater than current age")
	}
	if in.StartAssets.LessThan(decimal.Zero) {
		return fmt.Errorf("start assets cannot be negative")
	}
	if in.MonthlySave.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly savings cannot be negative")
	}
	if in.AnnualSpendToday.LessThan(decimal.Zero) {
		return fmt.Errorf("annual spend cannot be negative")
	}
	if in.PreAnnualGross < -1.0 {
		return fmt.Errorf("pre-retirement return cannot be less than -100%%")
	}
	if in.PostRealAnnualGross < -1.0 {
		return fmt.Errorf("post-retirement real return cannot be less than -100%%")
	}
	if in.InflationAnnual < -0.10 || in.InflationAnnual > 0.20 {
		return fmt.Errorf("inflation must be between -10%% and 20%%, got %.2f%%", in.InflationAnnual*100)
	}
	return nil
}

func (ip *InputParser) validateComparison(cmp *domain.ComparisonAssumptions) error {
	if cmp.DelayYears < 0 {
		return fmt.Errorf("delay years cannot be negative")
	}
	if cmp.DIYFeeAnnual < 0 || cmp.DIYFeeAnnual > 1 {
		return fmt.Errorf("diy fee must be between 0 and 1")
	}
	if cmp.AdvisorFeeAnnual < 0 || cmp.AdvisorFeeAnnual > 1 {
		return fmt.Errorf("advisor fee must be between 0 and 1")
	}
	if cmp.AdvisorFixedFee.LessThan(decimal.Zero) {
		return fmt.Errorf("advisor fixed fee cannot be negative")
	}
	return nil
}

// CreateExamplePlan returns a starter plan with plausible values.
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	return &domain.Plan{
		Household: domain.PlanInput{
			CurrentAge:          40,
			RetirementAge:       60,
			LifeExpectancy:      90,
			StartAssets:         decimal.NewFromInt(200000),
			MonthlySave:         decimal.NewFromInt(1500),
			PreAnnualGross:      0.08,
			PostRealAnnualGross: 0.025,
			InflationAnnual:     0.02,
			AnnualSpendToday:    decimal.NewFromInt(60000),
		},
		Comparison: domain.ComparisonAssumptions{
			DelayYears:       3,
			DIYFeeAnnual:     0.002,
			AdvisorFeeAnnual: 0.01,
			AdvisorFixedFee:  decimal.NewFromInt(1200),
		},
	}
}

// WriteExamplePlan marshals the example plan as YAML.
func (ip *InputParser) WriteExamplePlan() ([]byte, error) {
	return yaml.Marshal(ip.CreateExamplePlan())
}
