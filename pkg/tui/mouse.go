package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pagetabs/pkg/pages"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitTab
	hitTrigger
	hitSlot
	hitAddEnd
	hitMenuItem
	hitMenu
)

// mouseHit is what a pointer event landed on.
type mouseHit struct {
	kind   hitKind
	pageID string
	slot   int
	action pages.MenuAction
	rect   pages.Rect
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Modals swallow pointer input.
	if a.rename.Active || a.confirm.Active() || a.showHelp {
		return nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonLeft {
		return nil
	}
	return a.handleMouseHit(msg, a.hitTest(msg))
}

// hitTest resolves a pointer event against the zones marked in the last frame.
func (a *App) hitTest(msg tea.MouseMsg) mouseHit {
	if a.nav.Menu.IsOpen() {
		for i, item := range pages.MenuItems() {
			if z := a.zones.Get(menuItemZone(i)); z != nil && z.InBounds(msg) {
				return mouseHit{kind: hitMenuItem, action: item.Action}
			}
		}
		if a.menuRect.Contains(msg.X, msg.Y) {
			return mouseHit{kind: hitMenu}
		}
	}

	for i, p := range a.nav.Store.Pages() {
		if z := a.zones.Get(triggerZone(p.ID)); z != nil && z.InBounds(msg) {
			rect := pages.Rect{Left: z.StartX, Top: z.StartY, Right: z.EndX + 1, Bottom: z.EndY + 1}
			return mouseHit{kind: hitTrigger, pageID: p.ID, slot: i + 1, rect: rect}
		}
		if z := a.zones.Get(tabZone(p.ID)); z != nil && z.InBounds(msg) {
			// Left half drops before the tab, right half after it.
			slot := i
			if tab, ok := a.layout.tabs[p.ID]; ok && msg.X >= (tab.Left+tab.Right)/2 {
				slot = i + 1
			}
			return mouseHit{kind: hitTab, pageID: p.ID, slot: slot}
		}
	}

	for _, dz := range a.nav.DropZones() {
		if z := a.zones.Get(slotZone(dz.Slot)); z != nil && z.InBounds(msg) {
			return mouseHit{kind: hitSlot, slot: dz.Slot}
		}
	}

	if z := a.zones.Get(addEndZone); z != nil && z.InBounds(msg) {
		return mouseHit{kind: hitAddEnd, slot: a.nav.Store.Len()}
	}

	return mouseHit{kind: hitNone}
}

func (a *App) handleMouseHit(msg tea.MouseMsg, hit mouseHit) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		return a.handleMousePress(hit)
	case tea.MouseActionMotion:
		a.handleMouseMotion(hit)
		return nil
	case tea.MouseActionRelease:
		a.handleMouseRelease()
		return nil
	}
	return nil
}

func (a *App) handleMousePress(hit mouseHit) tea.Cmd {
	if a.nav.Drag.Dragging() {
		// A press during a keyboard drag drops it where the pointer is.
		if hit.kind == hitTab || hit.kind == hitSlot || hit.kind == hitTrigger {
			a.nav.Drop(hit.slot)
		} else {
			a.nav.EndDrag()
		}
		a.keyboardDrag = false
		return nil
	}

	if a.nav.Menu.IsOpen() {
		onOwnTrigger := hit.kind == hitTrigger && a.nav.Menu.IsOpenFor(hit.pageID)
		if hit.kind != hitMenu && hit.kind != hitMenuItem && !onOwnTrigger {
			a.nav.CloseMenu()
		}
	}

	switch hit.kind {
	case hitMenuItem:
		state, ok := a.nav.Menu.State()
		if !ok {
			return nil
		}
		a.nav.CloseMenu()
		return a.runAction(hit.action, state.PageID)

	case hitTrigger:
		a.openMenu(hit.pageID, hit.rect)

	case hitTab:
		a.nav.SelectPage(hit.pageID)
		a.pressedID = hit.pageID

	case hitSlot:
		for _, z := range a.nav.DropZones() {
			if z.Slot == hit.slot && z.AddEnabled {
				a.addPage(hit.slot)
				break
			}
		}

	case hitAddEnd:
		a.addPage(a.nav.Store.Len())
	}
	return nil
}

func (a *App) handleMouseMotion(hit mouseHit) {
	if a.pressedID != "" && !a.nav.Drag.Dragging() {
		a.nav.StartDrag(a.pressedID)
	}
	if !a.nav.Drag.Dragging() || a.keyboardDrag {
		return
	}
	switch hit.kind {
	case hitTab, hitSlot, hitTrigger:
		a.nav.DragOver(hit.slot)
	default:
		a.nav.Drag.Leave()
	}
}

func (a *App) handleMouseRelease() {
	a.pressedID = ""
	if !a.nav.Drag.Dragging() || a.keyboardDrag {
		return
	}
	if slot, ok := a.nav.Drag.HoverSlot(); ok {
		a.nav.Drop(slot)
		return
	}
	a.nav.EndDrag()
}
