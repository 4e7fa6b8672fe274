package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var headerLogo = "▛▀▖▞▀▖▞▀▖▛▀▘▀▛▘▞▀▖▛▀▖▞▀▘\n▙▄▘▙▄▌▌▄▖▙▄  ▌ ▙▄▌▙▄▘▝▀▖\n▌  ▌ ▌▝▀ ▙▄▖ ▌ ▌ ▌▙▄▘▀▀ "

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	contentWidth := width - 2
	logo := logoStyle.Render(headerLogo)

	// Narrow terminals get the title only.
	if lipgloss.Width(logo)+lipgloss.Width(title)+1 > contentWidth {
		return headerPadding.Render(titleStyle.Render(title))
	}

	// Title sits on the logo's bottom row, logo hugs the right edge.
	titleRendered := titleStyle.Render("\n\n" + title)
	gap := contentWidth - lipgloss.Width(titleRendered) - lipgloss.Width(logo)
	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logo,
	)

	return headerPadding.Render(headerContent)
}
