package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hearthbudget/hearth/internal/config"
	"github.com/hearthbudget/hearth/internal/model"
	"github.com/hearthbudget/hearth/internal/tui/theme"
)

// setupValues holds the raw string answers from the first-run form.
// Parsing happens once in applySetup; anything unparsable falls back
// to a safe default rather than failing the wizard.
type setupValues struct {
	rent     string
	rentMode string
	theme    string

	name1   string
	period1 string
	checks1 string

	addSecond bool
	name2     string
	period2   string
	checks2   string
}

func newSetupValues(cfg config.Config) setupValues {
	return setupValues{
		rentMode: cfg.General.RentMode,
		theme:    cfg.Appearance.Theme,
		period1:  string(model.Semimonthly),
		period2:  string(model.Semimonthly),
	}
}

var periodOptions = []huh.Option[string]{
	huh.NewOption("Semimonthly (twice a month)", string(model.Semimonthly)),
	huh.NewOption("Weekly", string(model.Weekly)),
	huh.NewOption("Biweekly (every two weeks)", string(model.Biweekly)),
}

// newSetupForm builds the first-run huh form.
func newSetupForm(vals *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to hearth!").
				Description("A few questions to set up your household budget."),
			huh.NewInput().
				Title("Monthly rent").
				Description("Total for the household, e.g. 1800").
				Value(&vals.rent),
			huh.NewSelect[string]().
				Title("Rent split").
				Options(
					huh.NewOption("Fair (proportional to income)", string(model.RentFair)),
					huh.NewOption("Equal", string(model.RentEqual)),
				).
				Value(&vals.rentMode),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&vals.theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("First person's name").
				Value(&vals.name1),
			huh.NewSelect[string]().
				Title("Pay period").
				Options(periodOptions...).
				Value(&vals.period1),
			huh.NewInput().
				Title("Recent paychecks").
				Description("Comma separated, e.g. 2342.97, 2342.97").
				Value(&vals.checks1),
			huh.NewConfirm().
				Title("Add a second person?").
				Value(&vals.addSecond),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Second person's name").
				Value(&vals.name2),
			huh.NewSelect[string]().
				Title("Pay period").
				Options(periodOptions...).
				Value(&vals.period2),
			huh.NewInput().
				Title("Recent paychecks").
				Description("Comma separated").
				Value(&vals.checks2),
		).WithHideFunc(func() bool { return !vals.addSecond }),
	)
}

// applySetup converts the form answers into the household and config,
// then persists both. Expense details start zeroed; the Settings tab
// and CLI edit them afterwards.
func (a *App) applySetup() tea.Cmd {
	vals := a.setupVals

	h := &model.Household{
		Rent:     parseAmount(vals.rent),
		RentMode: model.RentFair,
	}
	if mode := model.RentMode(vals.rentMode); mode.Valid() {
		h.RentMode = mode
	}

	h.People = append(h.People, setupPerson(vals.name1, vals.period1, vals.checks1, "Person 1"))
	if vals.addSecond {
		h.People = append(h.People, setupPerson(vals.name2, vals.period2, vals.checks2, "Person 2"))
	}

	a.household = h

	a.cfg.General.RentMode = string(h.RentMode)
	a.cfg.Appearance.Theme = vals.theme
	theme.SetActive(vals.theme)
	_ = config.Save(a.cfg)

	a.recompute()
	return a.scheduleSave()
}

func setupPerson(name, period, checks, fallback string) model.Person {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}

	p := model.Person{
		Name:        name,
		PayPeriod:   model.Semimonthly,
		SavingsRate: 0.20,
		WantsRate:   0.20,
	}
	if pp := model.PayPeriod(period); pp.Valid() {
		p.PayPeriod = pp
	}
	for _, field := range strings.Split(checks, ",") {
		if v := parseAmount(field); v > 0 {
			p.Paychecks = append(p.Paychecks, v)
		}
	}
	return p
}

func parseAmount(s string) float64 {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
