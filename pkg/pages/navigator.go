package pages

import (
	"fmt"

	"github.com/pluqqy/pagetabs/pkg/models"
)

// Prompter asks the user for a new page name. ok is false when the prompt was
// cancelled. Implementations may block.
type Prompter interface {
	PromptName(current string) (name string, ok bool, err error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(current string) (string, bool, error)

// PromptName implements Prompter.
func (f PrompterFunc) PromptName(current string) (string, bool, error) { return f(current) }

// Navigator wires the store, the drag state machine and the settings menu the
// way the page bar expects: actions close the menu, adding is refused while a
// drag is in progress, and renames go through a prompt.
type Navigator struct {
	Store    *Store
	Drag     DragState
	Menu     MenuState
	Geometry MenuGeometry
	prompter Prompter
}

// NewNavigator wraps store. prompter may be nil for hosts that collect rename
// input themselves and call ApplyRename.
func NewNavigator(store *Store, geometry MenuGeometry, prompter Prompter) *Navigator {
	return &Navigator{Store: store, Geometry: geometry, prompter: prompter}
}

// SelectPage selects id and closes the menu.
func (n *Navigator) SelectPage(id string) {
	n.Store.Select(id)
	n.Menu.Close()
}

// AddPage inserts a new page at slot unless a drag is in progress.
func (n *Navigator) AddPage(slot int) (models.Page, error) {
	if n.Drag.Dragging() {
		return models.Page{}, ErrDragActive
	}
	page := n.Store.Add(slot)
	n.Menu.Close()
	return page, nil
}

// OpenMenu opens the settings menu for id below trigger. Opening it for the
// page it is already open for closes it instead.
func (n *Navigator) OpenMenu(id string, trigger Rect, viewportWidth int) bool {
	if n.Menu.IsOpenFor(id) {
		n.Menu.Close()
		return false
	}
	if n.Store.Index(id) < 0 {
		return false
	}
	x, y := PlaceMenu(trigger, viewportWidth, n.Geometry)
	n.Menu.Open(id, x, y)
	return true
}

// CloseMenu hides the settings menu.
func (n *Navigator) CloseMenu() {
	n.Menu.Close()
}

// Invoke runs action for the page the menu is open for and closes the menu.
func (n *Navigator) Invoke(action MenuAction) error {
	state, ok := n.Menu.State()
	if !ok {
		return ErrMenuClosed
	}
	n.Menu.Close()
	return n.Apply(action, state.PageID)
}

// Apply runs action for id directly. Rename uses the prompter.
func (n *Navigator) Apply(action MenuAction, id string) error {
	var ok bool
	switch action {
	case ActionSetFirst:
		ok = n.Store.SetAsFirst(id)
	case ActionRename:
		_, err := n.RenameWithPrompt(id)
		return err
	case ActionCopy:
		_, ok = n.Store.Copy(id)
	case ActionDuplicate:
		_, ok = n.Store.Duplicate(id)
	case ActionDelete:
		ok = n.Store.Delete(id)
	default:
		return fmt.Errorf("unknown menu action %d", action)
	}
	if !ok {
		return fmt.Errorf("%s %q: %w", action, id, ErrPageNotFound)
	}
	return nil
}

// RenameWithPrompt asks the prompter for a new name, pre-filled with the
// current one. A cancelled prompt or blank input leaves the page unchanged and
// reports false.
func (n *Navigator) RenameWithPrompt(id string) (bool, error) {
	page, ok := n.Store.Page(id)
	if !ok {
		return false, fmt.Errorf("rename %q: %w", id, ErrPageNotFound)
	}
	if n.prompter == nil {
		return false, fmt.Errorf("rename %q: no prompter configured", id)
	}
	input, ok, err := n.prompter.PromptName(page.Name)
	if err != nil {
		return false, fmt.Errorf("rename prompt: %w", err)
	}
	if !ok {
		return false, nil
	}
	return n.ApplyRename(id, input), nil
}

// ApplyRename trims raw and renames id when anything remains.
func (n *Navigator) ApplyRename(id, raw string) bool {
	name, ok := CleanName(raw)
	if !ok {
		return false
	}
	n.Menu.Close()
	return n.Store.Rename(id, name)
}

// StartDrag begins dragging id and closes the menu.
func (n *Navigator) StartDrag(id string) {
	if n.Store.Index(id) < 0 {
		return
	}
	n.Menu.Close()
	n.Drag.Start(id)
}

// DragOver records the hovered slot.
func (n *Navigator) DragOver(slot int) {
	n.Drag.Over(slot)
}

// Drop finishes the drag at slot.
func (n *Navigator) Drop(slot int) bool {
	return n.Drag.Drop(n.Store, slot)
}

// EndDrag cancels the drag.
func (n *Navigator) EndDrag() {
	n.Drag.End()
}

// DropZones lays out the insertion slots for the current list.
func (n *Navigator) DropZones() []DropZone {
	return DropZones(n.Store.Len(), &n.Drag)
}
