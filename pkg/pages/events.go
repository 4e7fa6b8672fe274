package pages

import "github.com/pluqqy/pagetabs/pkg/models"

// EventType describes a page list change.
type EventType string

const (
	// EventCreated indicates a page was added, copied or duplicated.
	EventCreated EventType = "created"
	// EventDeleted indicates a page was removed.
	EventDeleted EventType = "deleted"
	// EventRenamed indicates a page name changed.
	EventRenamed EventType = "renamed"
	// EventMoved indicates a page changed position.
	EventMoved EventType = "moved"
	// EventSelected indicates the active page changed.
	EventSelected EventType = "selected"
)

// Event represents a change to the page list.
type Event struct {
	Type EventType
	Page models.Page
	// Index is the page's position after the change, or its former position
	// for EventDeleted.
	Index int
	// Active is the selected page id after the change; empty when none.
	Active string
}

// Observer receives events after each mutation completes.
type Observer func(Event)
