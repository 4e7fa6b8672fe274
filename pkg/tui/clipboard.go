package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// yankActive copies the active page name to the clipboard.
func (a *App) yankActive() tea.Cmd {
	page, ok := a.nav.Store.ActivePage()
	if !ok {
		return nil
	}
	if err := a.clipboardWrite(page.Name); err != nil {
		a.log.Warn("clipboard write failed", "err", err)
		a.setStatus("✗ Clipboard unavailable")
		return nil
	}
	a.setStatus(fmt.Sprintf("✓ Copied %q to clipboard", page.Name))
	return nil
}
