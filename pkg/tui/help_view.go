package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

var helpSections = []string{"Navigate and move", "Page actions", "Other"}

const helpIntro = `Pages sit in a row of tabs. The gaps between tabs are drop slots: drag a
tab onto one to reorder, or click a **+** to insert a new page there. The
**⋮** on each tab opens its settings menu.`

// helpRenderer renders the keybinding help as markdown, caching per width.
type helpRenderer struct {
	width    int
	rendered string
}

func newHelpRenderer() *helpRenderer {
	return &helpRenderer{}
}

// Render returns the help screen for km at width.
func (h *helpRenderer) Render(km keyMap, width int) string {
	if h.rendered != "" && h.width == width {
		return h.rendered
	}

	md := helpMarkdown(km)
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	out := md
	if err == nil {
		if s, err := r.Render(md); err == nil {
			out = s
		}
	}

	h.width = width
	h.rendered = out
	return out
}

func helpMarkdown(km keyMap) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString(helpIntro)
	b.WriteString("\n")
	for i, group := range km.FullHelp() {
		title := "More"
		if i < len(helpSections) {
			title = helpSections[i]
		}
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", title)
		for _, binding := range group {
			writeHelpRow(&b, binding)
		}
	}
	b.WriteString("\nPress **?** or **esc** to close.\n")
	return b.String()
}

func writeHelpRow(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	if h.Key == "" {
		return
	}
	fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
}
