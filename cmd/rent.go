package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/cli"
)

var rentCmd = &cobra.Command{
	Use:   "rent",
	Short: "Compare fair and equal rent splits with the 30% guideline",
	RunE:  runRent,
}

func init() {
	rootCmd.AddCommand(rentCmd)
}

func runRent(cmd *cobra.Command, _ []string) error {
	pl, _, err := buildPlan(cmd.Context())
	if err != nil {
		return err
	}
	split := pl.Split

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RENT SPLIT  %s total", cli.FormatCurrency(split.Rent))))
	fmt.Println()

	rows := make([][]string, 0, len(pl.People)+2)
	for _, pp := range pl.People {
		rows = append(rows, []string{
			pp.Person.Name,
			cli.FormatCurrency(pp.Share.Income),
			cli.FormatCurrency(pp.Share.Fair),
			cli.FormatCurrency(pp.Share.Equal),
			cli.FormatCurrency(pp.Share.Cap),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total",
			cli.FormatCurrency(pl.TotalIncome),
			cli.FormatCurrency(split.Rent),
			cli.FormatCurrency(split.Rent),
			cli.FormatCurrency(split.CapTotal),
		},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Person", "Income", "Fair", "Equal", "30% Cap"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Active mode: %s · Guideline: %s\n\n",
		pl.Household.RentMode,
		cli.Verdict(split.Affordable),
	)

	return nil
}
