package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planwise/internal/calculation"
)

var (
	flagVerbose bool
	flagFormat  string
	flagOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "planwise",
	Short: "Retirement planning calculator",
	Long: "Project retirement account balances under comparison scenarios\n" +
		"(start now vs delay, DIY vs advisor fees) and solve for the maximum\n" +
		"sustainable annual spend.",
	RunE: runProject,
	Args: cobra.ExactArgs(1),
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Report format (console, csv, trajectory-csv, json)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Write report to file instead of stdout")
}

// newEngine builds a calculation engine wired for the current flags.
func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if flagVerbose {
		engine.Debug = true
		engine.SetLogger(stderrLogger{})
	}
	return engine
}

// stderrLogger writes engine diagnostics to stderr, leaving stdout for the
// report itself.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}

func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
