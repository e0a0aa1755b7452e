package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hearthbudget/hearth/internal/cli"
	"github.com/hearthbudget/hearth/internal/config"
	"github.com/hearthbudget/hearth/internal/engine"
	"github.com/hearthbudget/hearth/internal/model"
	"github.com/hearthbudget/hearth/internal/tui/components"
	"github.com/hearthbudget/hearth/internal/tui/theme"
)

// Household-level and config fields come first, then six per-person
// fields each, addressed by index arithmetic in settingsField.
const (
	settingsFieldRent = iota
	settingsFieldRentMode
	settingsFieldMonths
	settingsFieldTheme
	settingsFieldLocale
	settingsFixedCount // sentinel

	personFieldCount = 6
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

// settingsField describes one row: a label, its current display value,
// and where the edit lands (person index -1 for household/config fields).
type settingsField struct {
	label  string
	value  string
	person int
	field  int
}

func (a App) settingsFieldCount() int {
	return settingsFixedCount + personFieldCount*len(a.household.People)
}

// settingsFields builds the full display list in cursor order.
func (a App) settingsFields() []settingsField {
	fields := []settingsField{
		{"Rent", cli.FormatCurrency(a.household.Rent), -1, settingsFieldRent},
		{"Rent Mode", string(a.household.RentMode), -1, settingsFieldRentMode},
		{"Projection Months", strconv.Itoa(a.cfg.General.Months), -1, settingsFieldMonths},
		{"Theme", a.cfg.Appearance.Theme, -1, settingsFieldTheme},
		{"Locale", a.cfg.Appearance.Locale, -1, settingsFieldLocale},
	}

	for pi, p := range a.household.People {
		fields = append(fields,
			settingsField{p.Name + " · Groceries", cli.FormatCurrency(p.Groceries), pi, 0},
			settingsField{p.Name + " · Gas", cli.FormatCurrency(p.Gas), pi, 1},
			settingsField{p.Name + " · Savings Rate", cli.FormatRate(p.SavingsRate), pi, 2},
			settingsField{p.Name + " · Wants Rate", cli.FormatRate(p.WantsRate), pi, 3},
			settingsField{p.Name + " · Starting Debt", cli.FormatCurrency(p.StartingDebt), pi, 4},
			settingsField{p.Name + " · Starting Savings", cli.FormatCurrency(p.StartingSavings), pi, 5},
		)
	}

	return fields
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	fields := a.settingsFields()
	if a.settings.cursor >= len(fields) {
		return a, nil
	}
	f := fields[a.settings.cursor]

	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	if f.person >= 0 {
		p := a.household.People[f.person]
		switch f.field {
		case 0:
			ti.SetValue(fmt.Sprintf("%.2f", p.Groceries))
		case 1:
			ti.SetValue(fmt.Sprintf("%.2f", p.Gas))
		case 2:
			ti.Placeholder = "0-100 (% of income)"
			ti.SetValue(fmt.Sprintf("%.0f", p.SavingsRate*100))
		case 3:
			ti.Placeholder = "0-100 (% of income)"
			ti.SetValue(fmt.Sprintf("%.0f", p.WantsRate*100))
		case 4:
			ti.SetValue(fmt.Sprintf("%.2f", p.StartingDebt))
		case 5:
			ti.SetValue(fmt.Sprintf("%.2f", p.StartingSavings))
		}
	} else {
		switch f.field {
		case settingsFieldRent:
			ti.SetValue(fmt.Sprintf("%.2f", a.household.Rent))
		case settingsFieldRentMode:
			ti.Placeholder = "fair or equal"
			ti.SetValue(string(a.household.RentMode))
		case settingsFieldMonths:
			ti.Placeholder = "12"
			ti.SetValue(strconv.Itoa(a.cfg.General.Months))
		case settingsFieldTheme:
			ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
			ti.SetValue(a.cfg.Appearance.Theme)
		case settingsFieldLocale:
			ti.Placeholder = "en-US"
			ti.SetValue(a.cfg.Appearance.Locale)
		}
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the pending edit. Household edits recompute the
// plan and persist through the store; config edits write the TOML file.
func (a *App) settingsSave() tea.Cmd {
	fields := a.settingsFields()
	if a.settings.cursor >= len(fields) {
		return nil
	}
	f := fields[a.settings.cursor]
	val := strings.TrimSpace(a.settings.input.Value())

	if f.person >= 0 {
		p := &a.household.People[f.person]
		switch f.field {
		case 0:
			p.Groceries = engine.ClampAmount(parseAmount(val))
		case 1:
			p.Gas = engine.ClampAmount(parseAmount(val))
		case 2:
			p.SavingsRate = engine.Clamp01(parseAmount(val) / 100)
		case 3:
			p.WantsRate = engine.Clamp01(parseAmount(val) / 100)
		case 4:
			p.StartingDebt = engine.ClampAmount(parseAmount(val))
		case 5:
			p.StartingSavings = engine.ClampAmount(parseAmount(val))
		}
		a.recompute()
		a.settings.saveErr = nil
		return a.scheduleSave()
	}

	switch f.field {
	case settingsFieldRent:
		a.household.Rent = engine.ClampAmount(parseAmount(val))
		a.recompute()
		a.settings.saveErr = nil
		return a.scheduleSave()

	case settingsFieldRentMode:
		if mode := model.RentMode(val); mode.Valid() {
			a.household.RentMode = mode
			a.cfg.General.RentMode = val
			a.recompute()
			a.settings.saveErr = config.Save(a.cfg)
			return a.scheduleSave()
		}
		return nil

	case settingsFieldMonths:
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			a.cfg.General.Months = n
			a.recompute()
			a.settings.saveErr = config.Save(a.cfg)
		}
		return nil

	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				a.settings.saveErr = config.Save(a.cfg)
				return nil
			}
		}
		return nil

	case settingsFieldLocale:
		if val != "" {
			a.cfg.Appearance.Locale = val
			cli.SetLocale(val)
			a.settings.saveErr = config.Save(a.cfg)
		}
		return nil
	}

	return nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)

	fields := a.settingsFields()

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-26s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-26s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)

			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			padLen := components.CardInnerWidth(cw) - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceHover).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-26s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Document:    ") + valueStyle.Render(a.cfg.DocumentPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Backend:     ") + valueStyle.Render(a.cfg.Storage.Backend) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("People:      ") + valueStyle.Render(strconv.Itoa(len(a.household.People))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
