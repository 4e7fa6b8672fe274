package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for drop targets
	ColorError    = "196" // Red for errors (same as danger)
)

// Tab bar styles
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Background(lipgloss.Color(ColorDark)).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive)).
			Bold(true).
			Padding(0, 1)

	DraggedTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim)).
			Background(lipgloss.Color(ColorSelected)).
			Faint(true).
			Padding(0, 1)

	TabUnderlineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive))

	DropZoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	DropZoneActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPrimary)).
				Bold(true)

	AddButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Padding(0, 1)

	AddButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim)).
				Padding(0, 1)
)

// Menu styles
var (
	MenuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)

	MenuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Bold(true)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	MenuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Background(lipgloss.Color(ColorSelected)).
				Bold(true)

	MenuDangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	MenuSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorInactive))
)

// Common styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// Icon glyphs for page positions
const (
	GlyphInfo     = "ⓘ"
	GlyphDocument = "▤"
	GlyphEnding   = "✓"
	GlyphTrigger  = "⋮"
	GlyphDropBar  = "┃"
	GlyphAdd      = "+"
)
