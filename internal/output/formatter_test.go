package output

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/domain"
)

func sampleComparison() *domain.PlanComparison {
	depAge := 82
	depExact := 82.25
	return &domain.PlanComparison{
		Scenarios: []domain.ScenarioSummary{
			{
				Name: "Start now",
				Result: domain.ProjectionResult{
					Rows: []domain.TrajectoryPoint{
						{Age: 40, NominalBalance: decimal.NewFromInt(200000), RealBalance: decimal.NewFromInt(200000)},
						{Age: 41, NominalBalance: decimal.NewFromInt(230000), RealBalance: decimal.NewFromInt(225000)},
					},
					EndNominal: decimal.NewFromInt(1500000),
					EndReal:    decimal.NewFromInt(900000),
				},
			},
			{
				Name: "Advisor fees",
				Result: domain.ProjectionResult{
					Rows: []domain.TrajectoryPoint{
						{Age: 40, NominalBalance: decimal.NewFromInt(200000), RealBalance: decimal.NewFromInt(200000)},
					},
					EndNominal:       decimal.Zero,
					EndReal:          decimal.Zero,
					DepletedAge:      &depAge,
					DepletedAgeExact: &depExact,
				},
			},
		},
		SustainableSpend:   decimal.NewFromInt(61000),
		CostOfDelay:        decimal.NewFromInt(120000),
		AdvisorDrag:        decimal.NewFromInt(300000),
		AdvisorDragPercent: decimal.NewFromFloat(20),
		Assumptions:        []string{"Returns compound monthly."},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"console", "console"},
		{"Console", "console"},
		{"text", "console"},
		{"table", "console"},
		{"csv", "csv"},
		{"csv-summary", "csv"},
		{"trajectory-csv", "trajectory-csv"},
		{"csv-trajectory", "trajectory-csv"},
		{"json", "json"},
		{"json-pretty", "json"},
		{"  JSON  ", "json"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.input)
		require.NotNil(t, f, "format %q", tt.input)
		assert.Equal(t, tt.want, f.Name(), "format %q", tt.input)
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleComparison())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "RETIREMENT PLAN COMPARISON")
	assert.Contains(t, out, "Start now")
	assert.Contains(t, out, "Advisor fees")
	assert.Contains(t, out, "runs out at age 82")
	assert.Contains(t, out, "Cost of delay (at retirement): $120,000")
	assert.Contains(t, out, "Sustainable annual spend: $61,000")
	assert.NotContains(t, out, "effectively unlimited")
	assert.Contains(t, out, "Returns compound monthly.")
}

func TestConsoleFormatterUnconstrained(t *testing.T) {
	results := sampleComparison()
	results.SpendUnconstrained = true

	data, err := ConsoleFormatter{}.Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), "$61,000+ (effectively unlimited)")
}

func TestCSVSummarizer(t *testing.T) {
	data, err := CSVSummarizer{}.Format(sampleComparison())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Scenario,EndNominal,EndReal,DepletedAge,DepletedAgeExact", lines[0])
	assert.Equal(t, "Start now,1500000.00,900000.00,,", lines[1])
	assert.Equal(t, "Advisor fees,0.00,0.00,82,82.2500", lines[2])
}

func TestCSVTrajectoryExporter(t *testing.T) {
	data, err := CSVTrajectoryExporter{}.Format(sampleComparison())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4) // header + 2 rows + 1 row
	assert.Equal(t, "Scenario,Age,NominalBalance,RealBalance", lines[0])
	assert.Equal(t, "Start now,40,200000.00,200000.00", lines[1])
	assert.Equal(t, "Advisor fees,40,200000.00,200000.00", lines[3])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	var decoded domain.PlanComparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "Start now", decoded.Scenarios[0].Name)
	assert.True(t, decoded.SustainableSpend.Equal(decimal.NewFromInt(61000)))
	require.NotNil(t, decoded.Scenarios[1].Result.DepletedAge)
	assert.Equal(t, 82, *decoded.Scenarios[1].Result.DepletedAge)
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	err := GenerateReport(sampleComparison(), "xml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestGenerateReportToFile(t *testing.T) {
	path := t.TempDir() + "/report.json"
	require.NoError(t, GenerateReport(sampleComparison(), "json", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded domain.PlanComparison
	assert.NoError(t, json.Unmarshal(data, &decoded))
}
