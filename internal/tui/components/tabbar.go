package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthbudget/hearth/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Rent", Key: 'r', KeyPos: 0},
	{Name: "Debt & Savings", Key: 'd', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// renderTab renders a single tab label with its shortcut key highlighted.
func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.SurfaceHover).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var s string
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		s = inactive.Render(tab.Name[:tab.KeyPos]) +
			keyStyle.Render(string(tab.Name[tab.KeyPos])) +
			inactive.Render(tab.Name[tab.KeyPos+1:])
	} else {
		s = inactive.Render(tab.Name) +
			inactive.Render("[") + keyStyle.Render(string(tab.Key)) + inactive.Render("]")
	}
	return inactive.Render(" ") + s + inactive.Render(" ")
}

// TabVisualWidth returns the rendered width of a tab, used for mouse hitboxes.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index,
// padded to the full terminal width.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active

	var parts []string
	for i, tab := range Tabs {
		parts = append(parts, renderTab(tab, i == activeIdx))
	}
	bar := strings.Join(parts, lipgloss.NewStyle().Background(t.Surface).Render(" "))

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
