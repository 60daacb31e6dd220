package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"planwise/internal/domain"
)

// CSVSummarizer writes one row per scenario.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "EndNominal", "EndReal", "DepletedAge", "DepletedAgeExact"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		depAge, depExact := "", ""
		if sc.Result.DepletedAge != nil {
			depAge = strconv.Itoa(*sc.Result.DepletedAge)
			depExact = strconv.FormatFloat(*sc.Result.DepletedAgeExact, 'f', 4, 64)
		}
		row := []string{
			sc.Name,
			sc.Result.EndNominal.StringFixed(2),
			sc.Result.EndReal.StringFixed(2),
			depAge,
			depExact,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVTrajectoryExporter writes every annual snapshot of every scenario, one
// row per (scenario, age).
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "trajectory-csv" }

func (c CSVTrajectoryExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Age", "NominalBalance", "RealBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, row := range sc.Result.Rows {
			record := []string{
				sc.Name,
				strconv.Itoa(row.Age),
				row.NominalBalance.StringFixed(2),
				row.RealBalance.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
