package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"planwise/internal/calculation"
	"planwise/internal/config"
	"planwise/internal/domain"
)

var (
	flagPreMin  float64
	flagPreMax  float64
	flagPostMin float64
	flagPostMax float64
	flagStep    float64
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity <plan.yaml>",
	Short: "Sweep sustainable spend across return-rate assumptions",
	Args:  cobra.ExactArgs(1),
	RunE:  runSensitivity,
}

func init() {
	sensitivityCmd.Flags().Float64Var(&flagPreMin, "pre-min", 0.04, "Minimum pre-retirement return")
	sensitivityCmd.Flags().Float64Var(&flagPreMax, "pre-max", 0.10, "Maximum pre-retirement return")
	sensitivityCmd.Flags().Float64Var(&flagPostMin, "post-min", 0.00, "Minimum post-retirement real return")
	sensitivityCmd.Flags().Float64Var(&flagPostMax, "post-max", 0.04, "Maximum post-retirement real return")
	sensitivityCmd.Flags().Float64Var(&flagStep, "step", 0.01, "Grid step")
	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	base := plan.Household.ScenarioParameters(domain.ScenarioOverride{
		FeeAnnualPre:  plan.Comparison.DIYFeeAnnual,
		FeeAnnualPost: plan.Comparison.DIYFeeAnnual,
	})

	grid := calculation.SensitivityGrid{
		PreReturnMin:  flagPreMin,
		PreReturnMax:  flagPreMax,
		PostReturnMin: flagPostMin,
		PostReturnMax: flagPostMax,
		Step:          flagStep,
	}

	engine := newEngine()
	points, err := engine.RunSensitivityAnalysis(base, plan.Household.LifeExpectancy, grid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOutput, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"PreReturn", "PostRealReturn", "SustainableSpend", "Unconstrained"}); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.PreReturn, 'f', 4, 64),
			strconv.FormatFloat(p.PostRealReturn, 'f', 4, 64),
			p.SustainableSpend.StringFixed(0),
			strconv.FormatBool(p.Unconstrained),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
