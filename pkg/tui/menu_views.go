package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pagetabs/pkg/pages"
)

const menuTitle = "Settings"

// renderMenu draws the page settings menu with cursor highlighting the
// keyboard selection. Each item is marked for mouse hits.
func (a *App) renderMenu() string {
	width := a.settings.UI.MenuWidth
	// Border and padding take four cells.
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	items := pages.MenuItems()
	rows := make([]string, 0, len(items)+2)
	rows = append(rows, MenuTitleStyle.Render(menuTitle))
	for i, item := range items {
		if item.SeparatorBefore {
			rows = append(rows, MenuSeparatorStyle.Render(strings.Repeat("─", inner)))
		}
		style := MenuItemStyle
		if item.Destructive {
			style = MenuDangerStyle
		}
		if i == a.menuCursor {
			style = MenuItemSelectedStyle
			if item.Destructive {
				style = style.Foreground(lipgloss.Color(ColorDanger))
			}
		}
		label := style.Width(inner).Render(item.Label)
		rows = append(rows, a.zones.Mark(menuItemZone(i), label))
	}

	return MenuBoxStyle.Render(strings.Join(rows, "\n"))
}

// updateMenuRect records the area of the open menu as last rendered.
func (a *App) updateMenuRect(x, y int, menu string) {
	a.menuRect = pages.Rect{
		Left:   x,
		Top:    y,
		Right:  x + lipgloss.Width(menu),
		Bottom: y + lipgloss.Height(menu),
	}
}
