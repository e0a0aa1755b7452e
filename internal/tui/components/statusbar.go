package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hearthbudget/hearth/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. saveState is a short
// note about the household document ("saved", "saving…", or an error).
func RenderStatusBar(width int, docPath, saveState string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [?]help  [q]uit"
	right := docPath
	if saveState != "" {
		right = saveState + "  " + docPath
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
