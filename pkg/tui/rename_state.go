package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pagetabs/pkg/pages"
)

const renamePrompt = "Enter new page name:"

// RenameState manages the rename modal for a page
type RenameState struct {
	Active          bool   // Whether rename mode is active
	PageID          string // Page being renamed
	OriginalName    string // Name when the modal opened
	ValidationError string // Real-time validation error
	input           textinput.Model
}

// NewRenameState creates a new rename state instance
func NewRenameState() *RenameState {
	ti := textinput.New()
	ti.Prompt = ""
	return &RenameState{input: ti}
}

// Start opens the modal for a page, pre-filled with its current name
func (rs *RenameState) Start(pageID, currentName string) tea.Cmd {
	rs.Active = true
	rs.PageID = pageID
	rs.OriginalName = currentName
	rs.ValidationError = ""
	rs.input.SetValue(currentName)
	rs.input.CursorEnd()
	return rs.input.Focus()
}

// Value returns the current input
func (rs *RenameState) Value() string {
	return rs.input.Value()
}

// HandleInput processes keyboard input for rename mode
func (rs *RenameState) HandleInput(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if !rs.Active {
		return false, nil
	}

	switch msg.String() {
	case "esc":
		rs.Reset()
		return true, nil

	case "enter":
		rs.validate()
		if rs.ValidationError != "" {
			return true, nil
		}
		submitted := RenameSubmittedMsg{PageID: rs.PageID, Name: rs.input.Value()}
		rs.Reset()
		return true, func() tea.Msg { return submitted }

	case "tab":
		return true, nil
	}

	rs.input, cmd = rs.input.Update(msg)
	rs.validate()
	return true, cmd
}

// validate checks if the new name is usable
func (rs *RenameState) validate() {
	rs.ValidationError = ""
	if _, ok := pages.CleanName(rs.input.Value()); !ok {
		rs.ValidationError = "Name cannot be empty"
	}
}

// Reset clears the rename state
func (rs *RenameState) Reset() {
	rs.Active = false
	rs.PageID = ""
	rs.OriginalName = ""
	rs.ValidationError = ""
	rs.input.Reset()
	rs.input.Blur()
}

// View renders the rename dialog
func (rs *RenameState) View(width int) string {
	if !rs.Active {
		return ""
	}

	dialogWidth := width / 2
	if dialogWidth < 40 {
		dialogWidth = 40
	}
	if dialogWidth > 70 {
		dialogWidth = 70
	}
	rs.input.Width = dialogWidth - 8

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(renamePrompt))
	b.WriteString("\n\n")

	field := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Width(dialogWidth-6).
		Padding(0, 1)
	b.WriteString(field.Render(rs.input.View()))
	b.WriteString("\n")

	if rs.ValidationError != "" {
		b.WriteString(ErrorStyle.Render(rs.ValidationError))
	} else {
		b.WriteString(DescriptionStyle.Render("enter to save • esc to cancel"))
	}

	return InputStyle.Width(dialogWidth).Render(b.String())
}

// RenameSubmittedMsg is sent when the user confirms a new name
type RenameSubmittedMsg struct {
	PageID string
	Name   string
}
