package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/engine"
	"github.com/hearthbudget/hearth/internal/model"
	"github.com/hearthbudget/hearth/internal/tui/components"
	"github.com/hearthbudget/hearth/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	pl := a.plan
	var b strings.Builder

	// Row 1: Metric cards
	var totalSavings float64
	for _, pp := range pl.People {
		totalSavings = engine.RoundCents(totalSavings + pp.Breakdown.Savings)
	}

	rentDetail := string(pl.Household.RentMode) + " split"
	if !pl.Split.Affordable {
		rentDetail += " · over 30% cap"
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Income", cli.FormatCurrency(pl.TotalIncome), "per month"},
		{"Rent", cli.FormatCurrency(pl.Household.Rent), rentDetail},
		{"Debt", cli.FormatCurrency(pl.TotalDebt), "starting balance"},
		{"Savings", cli.FormatCurrency(totalSavings), "per month"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: per-person category allocation
	halves := components.LayoutRow(cw, 2)
	var personCards []string
	for i, pp := range pl.People {
		outerW := cw
		if !a.isCompactLayout() && len(pl.People) > 1 {
			outerW = halves[i%2]
		}
		personCards = append(personCards, a.renderPersonCard(pp.Person.Name, pp.Breakdown, outerW))
	}

	if a.isCompactLayout() || len(personCards) == 1 {
		for _, card := range personCards {
			b.WriteString(card)
			b.WriteString("\n")
		}
	} else {
		for i := 0; i < len(personCards); i += 2 {
			end := i + 2
			if end > len(personCards) {
				end = len(personCards)
			}
			b.WriteString(components.CardRow(personCards[i:end]))
			b.WriteString("\n")
		}
	}

	// Row 3: 50/30/20 aggregate check
	if len(pl.People) > 0 {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

		var sb strings.Builder
		for _, pp := range pl.People {
			bd := pp.Breakdown
			sb.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", truncStr(pp.Person.Name, 12))))
			sb.WriteString(valueStyle.Render(fmt.Sprintf(
				"needs %s   wants %s   savings+debt %s",
				cli.FormatPercent(bd.NeedsPercent),
				cli.FormatPercent(bd.WantsPercent),
				cli.FormatPercent(bd.SavingsDebtPercent))))
			sb.WriteString("\n")
		}
		b.WriteString(components.ContentCard("50/30/20 Check", strings.TrimRight(sb.String(), "\n"), cw))
	}

	return b.String()
}

// categoryColor groups the buckets visually: needs cool, wants warm,
// savings green, debt red.
func categoryColor(c model.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case model.CategoryRent, model.CategoryBills:
		return t.Blue
	case model.CategoryGroceries, model.CategoryGas:
		return t.Yellow
	case model.CategorySavings:
		return t.Green
	case model.CategoryWants:
		return t.Orange
	default:
		return t.Red
	}
}

// renderPersonCard draws one member's monthly allocation as bar gauges.
func (a App) renderPersonCard(name string, bd model.Breakdown, outerW int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	maxAmount := 0.0
	for _, c := range model.Categories {
		if v := bd.Amount(c); v > maxAmount {
			maxAmount = v
		}
	}

	var body strings.Builder
	for _, c := range model.Categories {
		v := bd.Amount(c)
		body.WriteString(components.BarGauge(
			string(c),
			cli.FormatCurrency(v),
			v, maxAmount,
			categoryColor(c),
			9, 11, innerW,
		))
		body.WriteString("\n")
	}
	body.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(
		fmt.Sprintf("income %s/mo", cli.FormatCurrency(bd.MonthlyIncome))))

	return components.ContentCard(name, body.String(), outerW)
}
