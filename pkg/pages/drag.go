package pages

// DragPhase is the drag state machine's phase.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragDragging
)

func (p DragPhase) String() string {
	if p == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragState tracks a page being dragged and the insertion slot under the
// pointer. The zero value is idle.
type DragState struct {
	phase    DragPhase
	pageID   string
	slot     int
	hovering bool
}

// Phase reports the current phase.
func (d *DragState) Phase() DragPhase { return d.phase }

// Dragging reports whether a drag is in progress.
func (d *DragState) Dragging() bool { return d.phase == DragDragging }

// PageID returns the dragged page id, or "" when idle.
func (d *DragState) PageID() string { return d.pageID }

// HoverSlot returns the slot currently hovered during a drag.
func (d *DragState) HoverSlot() (int, bool) {
	if d.phase != DragDragging || !d.hovering {
		return 0, false
	}
	return d.slot, true
}

// IsDragOver reports whether slot is the hovered slot of an active drag.
func (d *DragState) IsDragOver(slot int) bool {
	s, ok := d.HoverSlot()
	return ok && s == slot
}

// Start begins dragging id. Starting again replaces the dragged page and
// clears the hovered slot.
func (d *DragState) Start(id string) {
	if id == "" {
		return
	}
	d.phase = DragDragging
	d.pageID = id
	d.slot = 0
	d.hovering = false
}

// Over records the hovered slot. It does nothing while idle.
func (d *DragState) Over(slot int) {
	if d.phase != DragDragging {
		return
	}
	d.slot = slot
	d.hovering = true
}

// Leave clears the hovered slot without ending the drag.
func (d *DragState) Leave() {
	d.hovering = false
}

// End cancels the drag without moving anything.
func (d *DragState) End() {
	*d = DragState{}
}

// Drop moves the dragged page to slot in store and returns to idle. It reports
// whether a move was performed; dropping while idle does nothing.
func (d *DragState) Drop(store *Store, slot int) bool {
	if d.phase != DragDragging {
		return false
	}
	id := d.pageID
	d.End()
	return store.Move(id, slot)
}
