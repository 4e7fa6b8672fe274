package pages

import "github.com/pluqqy/pagetabs/pkg/models"

// MenuAction is an entry of the page settings menu.
type MenuAction int

const (
	ActionSetFirst MenuAction = iota
	ActionRename
	ActionCopy
	ActionDuplicate
	ActionDelete
)

// MenuItem is a rendered row of the settings menu.
type MenuItem struct {
	Action MenuAction
	Label  string
	// SeparatorBefore draws a rule above the item.
	SeparatorBefore bool
	Destructive     bool
}

// MenuItems returns the settings menu rows in display order.
func MenuItems() []MenuItem {
	return []MenuItem{
		{Action: ActionSetFirst, Label: "Set as first page"},
		{Action: ActionRename, Label: "Rename"},
		{Action: ActionCopy, Label: "Copy"},
		{Action: ActionDuplicate, Label: "Duplicate"},
		{Action: ActionDelete, Label: "Delete", SeparatorBefore: true, Destructive: true},
	}
}

func (a MenuAction) String() string {
	switch a {
	case ActionSetFirst:
		return "set-first"
	case ActionRename:
		return "rename"
	case ActionCopy:
		return "copy"
	case ActionDuplicate:
		return "duplicate"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Rect is a cell rectangle; Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// MenuGeometry carries the placement constants for the settings menu.
type MenuGeometry struct {
	Width  int // menu width in cells
	Margin int // cells kept free at the viewport's right edge
	Gap    int // rows between the trigger and the menu
}

// PlaceMenu returns the menu's top-left cell for a trigger. The menu opens
// below the trigger, aligned to its left edge, and shifts left when it would
// cross the viewport's right edge.
func PlaceMenu(trigger Rect, viewportWidth int, g MenuGeometry) (x, y int) {
	x = trigger.Left
	if x+g.Width > viewportWidth {
		x = viewportWidth - g.Width - g.Margin
	}
	if x < 0 {
		x = 0
	}
	y = trigger.Bottom + g.Gap
	return x, y
}

// MenuState is the optional open settings menu. The zero value is closed.
type MenuState struct {
	open  bool
	state models.ContextMenuState
}

// Open shows the menu for pageID at the given position.
func (m *MenuState) Open(pageID string, x, y int) {
	m.open = true
	m.state = models.ContextMenuState{PageID: pageID, X: x, Y: y}
}

// Close hides the menu.
func (m *MenuState) Close() {
	*m = MenuState{}
}

// IsOpen reports whether the menu is showing.
func (m *MenuState) IsOpen() bool { return m.open }

// IsOpenFor reports whether the menu is showing for pageID.
func (m *MenuState) IsOpenFor(pageID string) bool {
	return m.open && m.state.PageID == pageID
}

// State returns the open menu's state.
func (m *MenuState) State() (models.ContextMenuState, bool) {
	return m.state, m.open
}
