package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/cli"
)

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Debt payoff schedule per person",
	RunE:  runPayoff,
}

func init() {
	rootCmd.AddCommand(payoffCmd)
}

func runPayoff(cmd *cobra.Command, _ []string) error {
	pl, _, err := buildPlan(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT PAYOFF"))
	fmt.Println()

	for _, pp := range pl.People {
		rows := [][]string{
			{"Starting Debt", cli.FormatCurrency(pp.Person.StartingDebt)},
			{"Monthly Payment", cli.FormatCurrency(pp.Breakdown.Debt)},
			{"Payoff", cli.FormatMonths(pp.Payoff)},
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   pp.Person.Name,
			Headers: []string{"Metric", "Value"},
			Rows:    rows,
		}))

		if len(pp.Payoff.Series) > 0 {
			balances := make([]float64, len(pp.Payoff.Series))
			for i, pt := range pp.Payoff.Series {
				balances[i] = pt.Balance
			}
			fmt.Printf("  balance  %s\n", cli.RenderSparkline(balances))
		}
		fmt.Println()
	}

	return nil
}
