package cmd

import (
	"github.com/spf13/cobra"

	"planwise/internal/config"
	"planwise/internal/output"
)

var projectCmd = &cobra.Command{
	Use:   "project <plan.yaml>",
	Short: "Run the scenario comparison for a plan file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	engine := newEngine()
	results, err := engine.RunPlan(plan)
	if err != nil {
		return err
	}

	return output.GenerateReport(results, flagFormat, flagOutput)
}
