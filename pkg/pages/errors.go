package pages

import "errors"

var (
	// ErrPageNotFound reports a page reference that matches nothing in the list.
	ErrPageNotFound = errors.New("page not found")
	// ErrDragActive reports an operation refused while a drag is in progress.
	ErrDragActive = errors.New("drag in progress")
	// ErrEmptyName reports a rename with a blank name.
	ErrEmptyName = errors.New("page name cannot be empty")
	// ErrMenuClosed reports a menu action with no open menu.
	ErrMenuClosed = errors.New("page menu is not open")
)
