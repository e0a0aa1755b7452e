package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/plan"
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Savings growth projection with the debt snowball",
	RunE:  runSavings,
}

func init() {
	rootCmd.AddCommand(savingsCmd)
}

func runSavings(cmd *cobra.Command, _ []string) error {
	pl, cfg, err := buildPlan(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SAVINGS PROJECTION  %d months", cfg.General.Months)))
	fmt.Println()

	for _, pp := range pl.People {
		if len(pp.Savings) == 0 {
			continue
		}

		final := pp.Savings[len(pp.Savings)-1]
		rows := [][]string{
			{"Starting Balance", cli.FormatCurrency(pp.Person.StartingSavings)},
			{"Monthly Savings", cli.FormatCurrency(pp.Breakdown.Savings)},
			{"Snowball Amount", cli.FormatCurrency(pp.Breakdown.Debt)},
			{"Snowball Starts", snowballStart(pp)},
			{"---"},
			{fmt.Sprintf("Month %d Balance", final.Month), cli.FormatCurrency(final.Balance)},
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   pp.Person.Name,
			Headers: []string{"Metric", "Value"},
			Rows:    rows,
		}))

		balances := make([]float64, len(pp.Savings))
		for i, pt := range pp.Savings {
			balances[i] = pt.Balance
		}
		fmt.Printf("  growth   %s\n\n", cli.RenderSparkline(balances))
	}

	return nil
}

// snowballStart describes when the freed debt payment joins savings.
func snowballStart(pp plan.PersonPlan) string {
	switch {
	case pp.Breakdown.Debt <= 0:
		return "n/a (no residual)"
	case pp.Payoff.Never():
		return "never"
	case pp.Payoff.Months == 0:
		return "month 1 (already debt-free)"
	default:
		return fmt.Sprintf("month %d", pp.Payoff.Months+1)
	}
}
