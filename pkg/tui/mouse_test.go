package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pagetabs/pkg/pages"
)

var (
	pressMsg   = tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	motionMsg  = tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	releaseMsg = tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
)

func TestMouseTabPressSelects(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B", "C"))

	a.handleMouseHit(pressMsg, mouseHit{kind: hitTab, pageID: "p2", slot: 1})
	assert.Equal(t, "p2", a.nav.Store.Active())
	assert.Equal(t, "p2", a.pressedID)
	assert.False(t, a.nav.Drag.Dragging(), "a press alone does not start a drag")

	a.handleMouseHit(releaseMsg, mouseHit{kind: hitTab, pageID: "p2", slot: 1})
	assert.Empty(t, a.pressedID)
	assert.Equal(t, []string{"A", "B", "C"}, names(a))
}

func TestMouseDrag(t *testing.T) {
	tests := []struct {
		name  string
		over  []mouseHit
		want  []string
		moved bool
	}{
		{
			name: "drop on first slot",
			over: []mouseHit{{kind: hitSlot, slot: 0}},
			want: []string{"B", "A", "C"},
		},
		{
			name: "drop on right half of last tab",
			over: []mouseHit{{kind: hitSlot, slot: 1}, {kind: hitTab, pageID: "p3", slot: 3}},
			want: []string{"A", "C", "B"},
		},
		{
			name: "drop on own slot keeps order",
			over: []mouseHit{{kind: hitSlot, slot: 2}},
			want: []string{"A", "B", "C"},
		},
		{
			name: "leaving the bar cancels",
			over: []mouseHit{{kind: hitSlot, slot: 0}, {kind: hitNone}},
			want: []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, testSettings("A", "B", "C"))

			a.handleMouseHit(pressMsg, mouseHit{kind: hitTab, pageID: "p2", slot: 1})
			for _, h := range tt.over {
				a.handleMouseHit(motionMsg, h)
			}
			require.True(t, a.nav.Drag.Dragging())
			assert.Equal(t, "p2", a.nav.Drag.PageID())

			a.handleMouseHit(releaseMsg, mouseHit{})
			assert.False(t, a.nav.Drag.Dragging())
			assert.Equal(t, tt.want, names(a))
		})
	}
}

func TestMouseDragClosesMenu(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))
	a.nav.OpenMenu("p1", pages.Rect{Left: 5, Top: 4, Right: 6, Bottom: 5}, a.width)

	a.handleMouseHit(pressMsg, mouseHit{kind: hitTab, pageID: "p2", slot: 1})
	assert.False(t, a.nav.Menu.IsOpen())
	a.handleMouseHit(motionMsg, mouseHit{kind: hitSlot, slot: 0})
	assert.True(t, a.nav.Drag.Dragging())
}

func TestMouseMotionWithoutPressIsIgnored(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))

	a.handleMouseHit(motionMsg, mouseHit{kind: hitSlot, slot: 0})
	assert.False(t, a.nav.Drag.Dragging())
}

func TestMouseTrigger(t *testing.T) {
	trigger := pages.Rect{Left: 10, Top: 4, Right: 11, Bottom: 5}

	t.Run("opens below the trigger", func(t *testing.T) {
		a := newTestApp(t, testSettings("A", "B"))
		a.menuCursor = 3

		a.handleMouseHit(pressMsg, mouseHit{kind: hitTrigger, pageID: "p1", slot: 1, rect: trigger})
		state, ok := a.nav.Menu.State()
		require.True(t, ok)
		assert.Equal(t, "p1", state.PageID)
		assert.Equal(t, 10, state.X)
		assert.Equal(t, 6, state.Y)
		assert.Equal(t, 0, a.menuCursor)
	})

	t.Run("second press toggles closed", func(t *testing.T) {
		a := newTestApp(t, testSettings("A", "B"))

		a.handleMouseHit(pressMsg, mouseHit{kind: hitTrigger, pageID: "p1", rect: trigger})
		a.handleMouseHit(pressMsg, mouseHit{kind: hitTrigger, pageID: "p1", rect: trigger})
		assert.False(t, a.nav.Menu.IsOpen())
	})

	t.Run("another trigger switches pages", func(t *testing.T) {
		a := newTestApp(t, testSettings("A", "B"))

		a.handleMouseHit(pressMsg, mouseHit{kind: hitTrigger, pageID: "p1", rect: trigger})
		a.handleMouseHit(pressMsg, mouseHit{kind: hitTrigger, pageID: "p2", rect: trigger})
		assert.True(t, a.nav.Menu.IsOpenFor("p2"))
	})

	t.Run("shifts left at the right edge", func(t *testing.T) {
		a := newTestApp(t, testSettings("A"))

		a.handleMouseHit(pressMsg, mouseHit{kind: hitTrigger, pageID: "p1", rect: pages.Rect{Left: 95, Top: 4, Right: 96, Bottom: 5}})
		state, _ := a.nav.Menu.State()
		assert.Equal(t, 100-24-1, state.X)
	})
}

func TestMouseMenuDismissal(t *testing.T) {
	tests := []struct {
		name     string
		hit      mouseHit
		wantOpen bool
	}{
		{"inside the menu", mouseHit{kind: hitMenu}, true},
		{"empty space", mouseHit{kind: hitNone}, false},
		{"another tab", mouseHit{kind: hitTab, pageID: "p2"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, testSettings("A", "B"))
			a.nav.OpenMenu("p1", pages.Rect{Left: 5, Top: 4, Right: 6, Bottom: 5}, a.width)

			a.handleMouseHit(pressMsg, tt.hit)
			assert.Equal(t, tt.wantOpen, a.nav.Menu.IsOpen())
		})
	}
}

func TestMouseMenuItem(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))
	a.nav.OpenMenu("p1", pages.Rect{Left: 5, Top: 4, Right: 6, Bottom: 5}, a.width)

	a.handleMouseHit(pressMsg, mouseHit{kind: hitMenuItem, action: pages.ActionDuplicate})
	assert.False(t, a.nav.Menu.IsOpen())
	assert.Equal(t, []string{"A", "A (Duplicate)", "B"}, names(a))
}

func TestMouseMenuItemRenameOpensModal(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))
	a.nav.OpenMenu("p2", pages.Rect{Left: 5, Top: 4, Right: 6, Bottom: 5}, a.width)

	a.handleMouseHit(pressMsg, mouseHit{kind: hitMenuItem, action: pages.ActionRename})
	assert.True(t, a.rename.Active)
	assert.Equal(t, "p2", a.rename.PageID)
	assert.Equal(t, "B", a.rename.Value())
}

func TestMouseAddControls(t *testing.T) {
	tests := []struct {
		name string
		hit  mouseHit
		want []string
	}{
		{"slot between pages", mouseHit{kind: hitSlot, slot: 1}, []string{"A", "New Page", "B", "C"}},
		{"leading slot has no add", mouseHit{kind: hitSlot, slot: 0}, []string{"A", "B", "C"}},
		{"trailing slot has no add", mouseHit{kind: hitSlot, slot: 3}, []string{"A", "B", "C"}},
		{"add at end", mouseHit{kind: hitAddEnd, slot: 3}, []string{"A", "B", "C", "New Page"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, testSettings("A", "B", "C"))

			a.handleMouseHit(pressMsg, tt.hit)
			assert.Equal(t, tt.want, names(a))
		})
	}
}

func TestMouseAddOnEmptyList(t *testing.T) {
	a := newTestApp(t, testSettings())

	a.handleMouseHit(pressMsg, mouseHit{kind: hitSlot, slot: 0})
	assert.Equal(t, []string{"New Page"}, names(a))
}

func TestMousePressDropsKeyboardDrag(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B", "C"))
	press(a, spaceKey())
	require.True(t, a.keyboardDrag)

	a.handleMouseHit(pressMsg, mouseHit{kind: hitSlot, slot: 3})
	assert.False(t, a.keyboardDrag)
	assert.False(t, a.nav.Drag.Dragging())
	assert.Equal(t, []string{"B", "C", "A"}, names(a))
}

func TestMouseIgnoredByModals(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))
	press(a, runeKey("r"))
	require.True(t, a.rename.Active)

	a.handleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, a.rename.Active)
	assert.Equal(t, "p1", a.nav.Store.Active())
}

// renderZones draws a frame and waits until every id has been recorded by the
// zone manager, which stores scan results asynchronously.
func renderZones(t *testing.T, a *App, ids ...string) map[string]*zone.ZoneInfo {
	t.Helper()
	a.View()
	found := make(map[string]*zone.ZoneInfo, len(ids))
	require.Eventually(t, func() bool {
		for _, id := range ids {
			z := a.zones.Get(id)
			if z == nil || z.IsZero() {
				return false
			}
			found[id] = z
		}
		return true
	}, 2*time.Second, 5*time.Millisecond)
	return found
}

func mouseAt(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouseZonesMenuFromTrigger(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B", "C"))

	z := renderZones(t, a, triggerZone("p2"))[triggerZone("p2")]
	a.Update(mouseAt(tea.MouseActionPress, z.StartX, z.StartY))
	require.True(t, a.nav.Menu.IsOpenFor("p2"))

	state, ok := a.nav.Menu.State()
	require.True(t, ok)
	assert.Equal(t, z.StartX, state.X)
	assert.Equal(t, z.EndY+1+a.settings.UI.MenuGap, state.Y)

	deleteItem := -1
	for i, item := range pages.MenuItems() {
		if item.Action == pages.ActionDelete {
			deleteItem = i
		}
	}
	require.GreaterOrEqual(t, deleteItem, 0)

	item := renderZones(t, a, menuItemZone(deleteItem))[menuItemZone(deleteItem)]
	a.Update(mouseAt(tea.MouseActionPress, item.StartX, item.StartY))
	assert.False(t, a.nav.Menu.IsOpen())
	assert.Equal(t, []string{"A", "C"}, names(a))
}

func TestMouseZonesDragByHalves(t *testing.T) {
	tests := []struct {
		name   string
		target string
		right  bool
		want   []string
	}{
		{"left half of first tab", "p1", false, []string{"B", "A", "C"}},
		{"right half of last tab", "p3", true, []string{"A", "C", "B"}},
		{"left half of own tab", "p2", false, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, testSettings("A", "B", "C"))
			zs := renderZones(t, a, tabZone("p2"), tabZone(tt.target))

			src := zs[tabZone("p2")]
			a.Update(mouseAt(tea.MouseActionPress, src.StartX, src.StartY))
			assert.Equal(t, "p2", a.nav.Store.Active())

			dst := zs[tabZone(tt.target)]
			x := dst.StartX
			if tt.right {
				x = dst.EndX
			}
			a.Update(mouseAt(tea.MouseActionMotion, x, dst.StartY))
			require.True(t, a.nav.Drag.Dragging())

			a.Update(mouseAt(tea.MouseActionRelease, x, dst.StartY))
			assert.False(t, a.nav.Drag.Dragging())
			assert.Equal(t, tt.want, names(a))
		})
	}
}

func TestMouseZonesReleaseOffBarCancels(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))
	src := renderZones(t, a, tabZone("p1"))[tabZone("p1")]

	a.Update(mouseAt(tea.MouseActionPress, src.StartX, src.StartY))
	a.Update(mouseAt(tea.MouseActionMotion, src.StartX, src.StartY+10))
	a.Update(mouseAt(tea.MouseActionRelease, src.StartX, src.StartY+10))

	assert.False(t, a.nav.Drag.Dragging())
	assert.Equal(t, []string{"A", "B"}, names(a))
}
