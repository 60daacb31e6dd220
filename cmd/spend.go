package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planwise/internal/config"
	"planwise/internal/domain"
	"planwise/pkg/money"
)

var flagLifeExpectancy float64

var spendCmd = &cobra.Command{
	Use:   "spend <plan.yaml>",
	Short: "Solve for the maximum sustainable annual spend",
	Long: "Finds the largest today-dollar annual withdrawal that does not\n" +
		"deplete savings before the target life expectancy, under the plan's\n" +
		"DIY fee assumptions.",
	Args: cobra.ExactArgs(1),
	RunE: runSpend,
}

func init() {
	spendCmd.Flags().Float64Var(&flagLifeExpectancy, "life-expectancy", 0,
		"Override the plan's life expectancy")
	rootCmd.AddCommand(spendCmd)
}

func runSpend(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	lifeExpectancy := plan.Household.LifeExpectancy
	if flagLifeExpectancy > 0 {
		lifeExpectancy = flagLifeExpectancy
	}

	base := plan.Household.ScenarioParameters(domain.ScenarioOverride{
		FeeAnnualPre:  plan.Comparison.DIYFeeAnnual,
		FeeAnnualPost: plan.Comparison.DIYFeeAnnual,
	})

	engine := newEngine()
	spend := engine.FindSustainableSpend(base, lifeExpectancy)

	fmt.Fprintf(cmd.OutOrStdout(), "Sustainable annual spend to age %.0f: %s\n",
		lifeExpectancy, money.FromDecimal(spend).Format())
	return nil
}
