package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planwise/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write a starter plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	data, err := parser.WriteExamplePlan()
	if err != nil {
		return fmt.Errorf("generating example plan: %w", err)
	}

	if len(args) == 0 {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote example plan to %s\n", args[0])
	return nil
}
