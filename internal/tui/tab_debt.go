package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/plan"
	"github.com/hearthbudget/hearth/internal/tui/components"
	"github.com/hearthbudget/hearth/internal/tui/theme"
)

func (a App) renderDebtTab(cw int) string {
	var b strings.Builder

	halves := components.LayoutRow(cw, 2)
	for _, pp := range a.plan.People {
		if a.isCompactLayout() {
			b.WriteString(a.renderDebtCard(pp, cw))
			b.WriteString("\n")
			b.WriteString(a.renderSavingsCard(pp, cw))
		} else {
			b.WriteString(components.CardRow([]string{
				a.renderDebtCard(pp, halves[0]),
				a.renderSavingsCard(pp, halves[1]),
			}))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderDebtCard(pp plan.PersonPlan, outerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	body.WriteString(labelStyle.Render("Starting debt:   "))
	body.WriteString(valueStyle.Render(cli.FormatCurrency(pp.Person.StartingDebt)))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Monthly payment: "))
	body.WriteString(valueStyle.Render(cli.FormatCurrency(pp.Breakdown.Debt)))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Debt-free in:    "))
	if pp.Payoff.Never() {
		body.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(cli.FormatMonths(pp.Payoff)))
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render(cli.FormatMonths(pp.Payoff)))
	}
	body.WriteString("\n\n")

	if len(pp.Payoff.Series) > 1 {
		balances := make([]float64, len(pp.Payoff.Series))
		for i, pt := range pp.Payoff.Series {
			balances[i] = pt.Balance
		}
		body.WriteString(components.Sparkline(balances, t.Red))
	} else {
		body.WriteString(labelStyle.Render("no balance to chart"))
	}

	return components.ContentCard(pp.Person.Name+" · Debt", body.String(), outerW)
}

func (a App) renderSavingsCard(pp plan.PersonPlan, outerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	body.WriteString(labelStyle.Render("Starting balance: "))
	body.WriteString(valueStyle.Render(cli.FormatCurrency(pp.Person.StartingSavings)))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Monthly savings:  "))
	body.WriteString(valueStyle.Render(cli.FormatCurrency(pp.Breakdown.Savings)))
	body.WriteString("\n")

	if n := len(pp.Savings); n > 0 {
		final := pp.Savings[n-1]
		body.WriteString(labelStyle.Render(fmt.Sprintf("Month %d:         ", final.Month)))
		body.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render(cli.FormatCurrency(final.Balance)))
		body.WriteString("\n\n")

		balances := make([]float64, n)
		for i, pt := range pp.Savings {
			balances[i] = pt.Balance
		}
		body.WriteString(components.Sparkline(balances, t.Green))
		body.WriteString("\n")

		if !pp.Payoff.Never() && pp.Breakdown.Debt > 0 {
			body.WriteString(dimStyle.Render(fmt.Sprintf(
				"snowball adds %s/mo after payoff", cli.FormatCurrency(pp.Breakdown.Debt))))
		}
	} else {
		body.WriteString(dimStyle.Render("projection horizon is zero"))
	}

	return components.ContentCard(pp.Person.Name+" · Savings", body.String(), outerW)
}
