package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Full budget breakdown for every household member",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	pl, _, err := buildPlan(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HEARTH BUDGET  %s rent split", pl.Household.RentMode)))
	fmt.Println()

	for _, pp := range pl.People {
		b := pp.Breakdown
		rows := [][]string{
			{"Monthly Income", cli.FormatCurrency(b.MonthlyIncome), ""},
			{"---"},
		}
		for _, c := range model.Categories {
			rows = append(rows, []string{
				categoryLabel(c),
				cli.FormatCurrency(b.Amount(c)),
				cli.FormatPercent(b.Percent[c]),
			})
		}
		rows = append(rows,
			[]string{"---"},
			[]string{"Needs", "", cli.FormatPercent(b.NeedsPercent)},
			[]string{"Wants", "", cli.FormatPercent(b.WantsPercent)},
			[]string{"Savings + Debt", "", cli.FormatPercent(b.SavingsDebtPercent)},
		)

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   pp.Person.Name,
			Headers: []string{"Category", "Amount", "% Income"},
			Rows:    rows,
		}))

		peak := 0.0
		for _, c := range model.Categories {
			if v := b.Amount(c); v > peak {
				peak = v
			}
		}
		for _, c := range model.Categories {
			fmt.Println(cli.RenderHorizontalBar(string(c), b.Amount(c), peak, 30))
		}
		fmt.Println()
	}

	fmt.Printf("  Household income %s · rent %s · %s\n\n",
		cli.FormatCurrency(pl.TotalIncome),
		cli.FormatCurrency(pl.Household.Rent),
		cli.Verdict(pl.Split.Affordable),
	)

	return nil
}

func categoryLabel(c model.Category) string {
	switch c {
	case model.CategoryRent:
		return "Rent"
	case model.CategoryBills:
		return "Bills"
	case model.CategoryGroceries:
		return "Groceries"
	case model.CategoryGas:
		return "Gas"
	case model.CategorySavings:
		return "Savings"
	case model.CategoryWants:
		return "Wants"
	case model.CategoryDebt:
		return "Debt (snowball)"
	}
	return string(c)
}
