package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/model"
	"github.com/hearthbudget/hearth/internal/tui/components"
	"github.com/hearthbudget/hearth/internal/tui/theme"
)

func (a App) renderRentTab(cw int) string {
	t := theme.Active
	pl := a.plan
	mode := pl.Household.RentMode
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Split table: one row per person, active mode column highlighted
	var body strings.Builder
	header := fmt.Sprintf("%-14s %12s %12s %12s %12s", "Person", "Income", "Fair", "Equal", "30% Cap")
	body.WriteString(dimStyle.Render(header))
	body.WriteString("\n")

	for _, pp := range pl.People {
		s := pp.Share
		fair := valueStyle.Render(fmt.Sprintf("%12s", cli.FormatCurrency(s.Fair)))
		equal := valueStyle.Render(fmt.Sprintf("%12s", cli.FormatCurrency(s.Equal)))
		if mode == model.RentEqual {
			equal = activeStyle.Render(fmt.Sprintf("%12s", cli.FormatCurrency(s.Equal)))
		} else {
			fair = activeStyle.Render(fmt.Sprintf("%12s", cli.FormatCurrency(s.Fair)))
		}

		capStr := fmt.Sprintf("%12s", cli.FormatCurrency(s.Cap))
		capRendered := valueStyle.Render(capStr)
		if pp.ActiveShare(mode) > s.Cap {
			capRendered = lipgloss.NewStyle().Foreground(t.Orange).Render(capStr)
		}

		body.WriteString(valueStyle.Render(fmt.Sprintf("%-14s", truncStr(pp.Person.Name, 14))))
		body.WriteString(valueStyle.Render(fmt.Sprintf("%12s", cli.FormatCurrency(s.Income))))
		body.WriteString(" " + fair + " " + equal + " " + capRendered)
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Active mode: "))
	body.WriteString(activeStyle.Render(string(mode)))
	body.WriteString(dimStyle.Render("   [m] toggle"))

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Rent Split · %s", cli.FormatCurrency(pl.Household.Rent)),
		body.String(), cw))
	b.WriteString("\n")

	// Affordability card: household rent against the combined 30% cap
	var afford strings.Builder
	verdictStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	verdict := "Affordable"
	if !pl.Split.Affordable {
		verdictStyle = lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
		verdict = "Stretch"
	}

	pct := 0.0
	if pl.Split.CapTotal > 0 {
		pct = pl.Household.Rent / pl.Split.CapTotal
	}
	barW := components.CardInnerWidth(cw) - 2
	if barW > 50 {
		barW = 50
	}

	afford.WriteString(labelStyle.Render("Household cap (30% of income): "))
	afford.WriteString(valueStyle.Render(cli.FormatCurrency(pl.Split.CapTotal)))
	afford.WriteString("\n")
	afford.WriteString(components.ProgressBar(pct, barW))
	afford.WriteString("\n")
	afford.WriteString(verdictStyle.Render(verdict))
	if pl.Split.CapTotal > 0 {
		afford.WriteString(dimStyle.Render(fmt.Sprintf("  rent is %.0f%% of the cap", pct*100)))
	}

	b.WriteString(components.ContentCard("Affordability", afford.String(), cw))

	return b.String()
}
