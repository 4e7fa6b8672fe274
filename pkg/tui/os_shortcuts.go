package tui

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     []string
	Linux   []string
	Windows []string
	Default []string // Fallback if OS-specific not defined
}

// Keys returns the key names for the current OS
func (s ShortcutKey) Keys() []string {
	return s.keysFor(GetOS())
}

func (s ShortcutKey) keysFor(os OSType) []string {
	switch os {
	case OSMac:
		if len(s.Mac) > 0 {
			return s.Mac
		}
	case OSLinux:
		if len(s.Linux) > 0 {
			return s.Linux
		}
	case OSWindows:
		if len(s.Windows) > 0 {
			return s.Windows
		}
	}
	return s.Default
}

// Binding builds a bubbles key binding with the help label shown for the
// first key.
func (s ShortcutKey) Binding(desc string) key.Binding {
	keys := s.Keys()
	label := ""
	if len(keys) > 0 {
		label = FormatShortcutForHelp(keys[0])
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// Shortcuts contains the page bar shortcuts with OS-specific variations
var Shortcuts = struct {
	Prev, Next           ShortcutKey
	MoveLeft, MoveRight  ShortcutKey
	Grab, Drop           ShortcutKey
	Menu, MenuUp, MenuDn ShortcutKey
	Add, Append          ShortcutKey
	Rename, Copy, Dup    ShortcutKey
	Delete, SetFirst     ShortcutKey
	Yank, Help           ShortcutKey
	Cancel, Quit         ShortcutKey
}{
	Prev:      ShortcutKey{Default: []string{"left", "h"}},
	Next:      ShortcutKey{Default: []string{"right", "l"}},
	MoveLeft:  ShortcutKey{Default: []string{"shift+left", "H"}},
	MoveRight: ShortcutKey{Default: []string{"shift+right", "L"}},
	Grab:      ShortcutKey{Default: []string{" "}},
	Drop:      ShortcutKey{Default: []string{"enter", " "}},
	Menu:      ShortcutKey{Default: []string{".", "m"}},
	MenuUp:    ShortcutKey{Default: []string{"up", "k"}},
	MenuDn:    ShortcutKey{Default: []string{"down", "j"}},
	Add:       ShortcutKey{Default: []string{"a"}},
	Append:    ShortcutKey{Default: []string{"A"}},
	Rename:    ShortcutKey{Default: []string{"r"}},
	Copy:      ShortcutKey{Default: []string{"c"}},
	Dup:       ShortcutKey{Default: []string{"d"}},
	Delete: ShortcutKey{
		Mac:     []string{"x", "backspace"}, // Mac keyboards label backspace "delete"
		Default: []string{"x", "delete"},
	},
	SetFirst: ShortcutKey{Default: []string{"f"}},
	Yank:     ShortcutKey{Default: []string{"y"}},
	Help:     ShortcutKey{Default: []string{"?"}},
	Cancel:   ShortcutKey{Default: []string{"esc"}},
	Quit:     ShortcutKey{Default: []string{"q", "ctrl+c"}},
}

// FormatShortcutForHelp formats a key name for display in help text
func FormatShortcutForHelp(shortcut string) string {
	switch shortcut {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "delete":
		return "Del"
	}
	if GetOS() == OSLinux || GetOS() == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+left", "⇧←")
	shortcut = strings.ReplaceAll(shortcut, "shift+right", "⇧→")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}
