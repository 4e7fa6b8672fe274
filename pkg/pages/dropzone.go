package pages

// DropZone is an insertion slot drawn between page tabs.
type DropZone struct {
	// Slot is the insertion index passed to Move or Add.
	Slot int
	// CanAdd is true when the zone offers an inline add control.
	CanAdd bool
	// AddEnabled is CanAdd with drags taken into account.
	AddEnabled bool
	// DragOver is true while a drag hovers this zone.
	DragOver bool
}

// DropZones lays out the insertion slots for a list of n pages. The slot before
// the first page never offers add; the slot after page i offers it only when it
// sits between two pages. An empty list gets a single slot that does.
func DropZones(n int, drag *DragState) []DropZone {
	dragging := drag != nil && drag.Dragging()
	over := func(slot int) bool { return drag != nil && drag.IsDragOver(slot) }

	if n == 0 {
		return []DropZone{{Slot: 0, CanAdd: true, AddEnabled: !dragging, DragOver: over(0)}}
	}

	zones := make([]DropZone, 0, n+1)
	zones = append(zones, DropZone{Slot: 0, DragOver: over(0)})
	for i := 0; i < n; i++ {
		slot := i + 1
		canAdd := slot < n
		zones = append(zones, DropZone{
			Slot:       slot,
			CanAdd:     canAdd,
			AddEnabled: canAdd && !dragging,
			DragOver:   over(slot),
		})
	}
	return zones
}
