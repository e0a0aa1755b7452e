package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/engine"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Show how paychecks normalize into monthly income",
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(cmd *cobra.Command, _ []string) error {
	pl, _, err := buildPlan(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("INCOME NORMALIZATION"))
	fmt.Println()

	rows := make([][]string, 0, len(pl.People))
	for _, pp := range pl.People {
		p := pp.Person
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%d", len(p.Paychecks)),
			cli.FormatCurrency(engine.Average(p.Paychecks)),
			cli.FormatPayPeriod(string(p.PayPeriod)),
			cli.FormatCurrency(pp.Breakdown.MonthlyIncome),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Person", "Stubs", "Avg Paycheck", "Period", "Monthly"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
