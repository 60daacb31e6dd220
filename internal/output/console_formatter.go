package output

import (
	"bytes"
	"fmt"

	"planwise/internal/domain"
)

// ConsoleFormatter renders a concise plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PLAN COMPARISON")
	fmt.Fprintln(&buf, "==========================")
	fmt.Fprintln(&buf)

	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%s: end=%s (real %s)", sc.Name,
			FormatCurrency(sc.Result.EndNominal),
			FormatCurrency(sc.Result.EndReal))
		if sc.Result.DepletedAge != nil {
			fmt.Fprintf(&buf, " — runs out at age %d", *sc.Result.DepletedAge)
		}
		fmt.Fprintln(&buf)
		writeTrajectory(&buf, sc)
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "Cost of delay (at retirement): %s\n", FormatCurrency(results.CostOfDelay))
	fmt.Fprintf(&buf, "Advisor fee drag: %s (%s of end balance)\n",
		FormatCurrency(results.AdvisorDrag), FormatPercentage(results.AdvisorDragPercent))
	if results.SpendUnconstrained {
		fmt.Fprintf(&buf, "Sustainable annual spend: %s+ (effectively unlimited)\n",
			FormatCurrency(results.SustainableSpend))
	} else {
		fmt.Fprintf(&buf, "Sustainable annual spend: %s\n", FormatCurrency(results.SustainableSpend))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range results.Assumptions {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}

	return buf.Bytes(), nil
}

// writeTrajectory prints every fifth annual snapshot plus the final one, to
// keep the console report skimmable.
func writeTrajectory(buf *bytes.Buffer, sc domain.ScenarioSummary) {
	rows := sc.Result.Rows
	for i, row := range rows {
		if i%5 != 0 && i != len(rows)-1 {
			continue
		}
		fmt.Fprintf(buf, "  age %3d  nominal %14s  real %14s\n",
			row.Age, FormatCurrency(row.NominalBalance), FormatCurrency(row.RealBalance))
	}
}
