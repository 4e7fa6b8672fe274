package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppStatusMessages(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))

	_, cmd := a.Update(StatusMsg("Test status message"))
	assert.Equal(t, "Test status message", a.statusMsg)
	require.NotNil(t, cmd, "a status schedules its own clear")
	seq := a.statusSeq

	a.Update(StatusMsg("Newer status"))
	assert.Equal(t, "Newer status", a.statusMsg)

	a.Update(clearStatusMsg{seq: seq})
	assert.Equal(t, "Newer status", a.statusMsg, "stale clear leaves the newer status")

	a.Update(clearStatusMsg{seq: a.statusSeq})
	assert.Empty(t, a.statusMsg)
}

func TestAppStatusFromPageEvents(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"add", "a", `✓ Added "New Page"`},
		{"copy", "c", `✓ Added "A (Copy)"`},
		{"delete", "x", `✓ Deleted "A"`},
		{"move", "L", `✓ Moved "A" to position 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, testSettings("A", "B"))

			_, cmd := a.Update(runeKey(tt.keys))
			assert.Equal(t, tt.want, a.statusMsg)
			assert.NotNil(t, cmd)
		})
	}
}

func TestAppSelectionHasNoStatus(t *testing.T) {
	a := newTestApp(t, testSettings("A", "B"))

	_, cmd := a.Update(runeKey("l"))
	assert.Empty(t, a.statusMsg)
	assert.Nil(t, cmd)
}
