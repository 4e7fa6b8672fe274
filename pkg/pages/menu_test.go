package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/pagetabs/pkg/models"
)

func TestPlaceMenu(t *testing.T) {
	geom := MenuGeometry{Width: 24, Margin: 1, Gap: 1}

	tests := []struct {
		name     string
		trigger  Rect
		viewport int
		wantX    int
		wantY    int
	}{
		{"fits below trigger", Rect{Left: 10, Top: 3, Right: 11, Bottom: 4}, 80, 10, 5},
		{"exact fit stays", Rect{Left: 56, Top: 3, Right: 57, Bottom: 4}, 80, 56, 5},
		{"overflow shifts left", Rect{Left: 70, Top: 3, Right: 71, Bottom: 4}, 80, 55, 5},
		{"narrow viewport clamps to zero", Rect{Left: 5, Top: 0, Right: 6, Bottom: 1}, 10, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PlaceMenu(tt.trigger, tt.viewport, geom)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestMenuState(t *testing.T) {
	var m MenuState
	assert.False(t, m.IsOpen())

	m.Open("p1", 4, 7)
	assert.True(t, m.IsOpen())
	assert.True(t, m.IsOpenFor("p1"))
	assert.False(t, m.IsOpenFor("p2"))
	state, ok := m.State()
	assert.True(t, ok)
	assert.Equal(t, models.ContextMenuState{PageID: "p1", X: 4, Y: 7}, state)

	m.Close()
	assert.False(t, m.IsOpen())
	_, ok = m.State()
	assert.False(t, ok)
}

func TestMenuItemsOrder(t *testing.T) {
	items := MenuItems()
	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"Set as first page", "Rename", "Copy", "Duplicate", "Delete"}, labels)
	assert.True(t, items[4].SeparatorBefore)
	assert.True(t, items[4].Destructive)
	assert.Equal(t, "delete", items[4].Action.String())
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 2, Top: 1, Right: 5, Bottom: 3}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 2))
	assert.False(t, r.Contains(3, 3))
	assert.False(t, r.Contains(1, 1))
}
