package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/pagetabs/pkg/models"
	"github.com/pluqqy/pagetabs/pkg/pages"
)

const (
	dropZoneWidth = 3
	addEndLabel   = "+ Add page"
	scrollLeft    = "‹ "
	scrollRight   = " ›"
)

// Zone ids used for mouse hit testing
func tabZone(id string) string     { return "tab:" + id }
func triggerZone(id string) string { return "trigger:" + id }
func slotZone(slot int) string     { return fmt.Sprintf("slot:%d", slot) }
func menuItemZone(i int) string    { return fmt.Sprintf("menu-item:%d", i) }

const addEndZone = "add-end"

type partKind int

const (
	partSlot partKind = iota
	partTab
	partAddEnd
)

// tabPart is one horizontal segment of the tab bar before zone marking.
type tabPart struct {
	kind    partKind
	page    models.Page
	index   int
	slot    int
	label   string // tab label or slot/add text
	trigger string // tabs only
	width   int
}

// tabLayout records where the last rendered tab bar put things.
type tabLayout struct {
	row      int
	tabs     map[string]pages.Rect
	triggers map[string]pages.Rect
	slots    map[int]pages.Rect
}

func iconGlyph(icon models.PageIconType) string {
	switch icon {
	case models.IconInfo:
		return GlyphInfo
	case models.IconEnding:
		return GlyphEnding
	default:
		return GlyphDocument
	}
}

func (a *App) tabStyle(id string) lipgloss.Style {
	switch {
	case a.nav.Drag.Dragging() && a.nav.Drag.PageID() == id:
		return DraggedTabStyle
	case a.nav.Store.Active() == id:
		return ActiveTabStyle
	default:
		return TabStyle
	}
}

func (a *App) slotText(z pages.DropZone) (string, lipgloss.Style) {
	switch {
	case z.DragOver:
		return " " + GlyphDropBar + " ", DropZoneActiveStyle
	case a.nav.Drag.Dragging():
		return " · ", DropZoneStyle
	case z.AddEnabled:
		return " " + GlyphAdd + " ", AddButtonStyle.Padding(0)
	default:
		return strings.Repeat(" ", dropZoneWidth), DropZoneStyle
	}
}

// buildParts lays out slots, tabs and the trailing add control in order.
func (a *App) buildParts() []tabPart {
	list := a.nav.Store.Pages()
	zones := a.nav.DropZones()
	maxName := a.settings.UI.NameMaxWidth

	parts := make([]tabPart, 0, 2*len(list)+2)
	for i, z := range zones {
		text, style := a.slotText(z)
		parts = append(parts, tabPart{kind: partSlot, slot: z.Slot, label: style.Render(text), width: dropZoneWidth})
		if i >= len(list) {
			continue
		}
		p := list[i]
		style = a.tabStyle(p.ID)
		name := truncate.StringWithTail(p.Name, uint(maxName), "…")
		label := style.PaddingRight(0).Render(iconGlyph(a.nav.Store.IconAt(i)) + " " + name + " ")
		trigger := style.PaddingLeft(0).Render(GlyphTrigger)
		parts = append(parts, tabPart{
			kind:    partTab,
			page:    p,
			index:   i,
			slot:    i,
			label:   label,
			trigger: trigger,
			width:   lipgloss.Width(label) + lipgloss.Width(trigger),
		})
	}

	addStyle := AddButtonStyle
	if a.nav.Drag.Dragging() {
		addStyle = AddButtonDisabledStyle
	}
	addLabel := addStyle.Render(addEndLabel)
	parts = append(parts, tabPart{kind: partAddEnd, slot: len(list), label: addLabel, width: lipgloss.Width(addLabel)})
	return parts
}

// visibleWindow picks the parts that fit in width, keeping the active tab in
// view. It reports whether parts were hidden on either side.
func visibleWindow(parts []tabPart, activeID string, width int) (start, end int, clippedLeft, clippedRight bool) {
	total := 0
	for _, p := range parts {
		total += p.width
	}
	if total <= width || width <= 0 {
		return 0, len(parts), false, false
	}

	avail := width - lipgloss.Width(scrollLeft) - lipgloss.Width(scrollRight)
	activeEnd := 0
	for i, p := range parts {
		if p.kind == partTab && p.page.ID == activeID {
			activeEnd = i
			break
		}
	}

	// Slide the window start forward until the active tab fits.
	for start = 0; start < activeEnd; start++ {
		used := 0
		for i := start; i <= activeEnd; i++ {
			used += parts[i].width
		}
		if used <= avail {
			break
		}
	}

	used := 0
	for end = start; end < len(parts); end++ {
		if used+parts[end].width > avail {
			break
		}
		used += parts[end].width
	}
	if end == start && start < len(parts) {
		end = start + 1
	}
	return start, end, start > 0, end < len(parts)
}

// renderTabBar draws the tab line and the underline below it, marks hit zones
// and records the layout for keyboard-driven menu placement.
func (a *App) renderTabBar(row int) string {
	parts := a.buildParts()
	start, end, clipL, clipR := visibleWindow(parts, a.nav.Store.Active(), a.width)

	a.layout = tabLayout{
		row:      row,
		tabs:     map[string]pages.Rect{},
		triggers: map[string]pages.Rect{},
		slots:    map[int]pages.Rect{},
	}

	var line, under strings.Builder
	x := 0
	if clipL {
		line.WriteString(DescriptionStyle.Render(scrollLeft))
		under.WriteString(strings.Repeat(" ", lipgloss.Width(scrollLeft)))
		x += lipgloss.Width(scrollLeft)
	}

	for _, p := range parts[start:end] {
		switch p.kind {
		case partSlot:
			line.WriteString(a.zones.Mark(slotZone(p.slot), p.label))
			a.layout.slots[p.slot] = pages.Rect{Left: x, Top: row, Right: x + p.width, Bottom: row + 1}
			under.WriteString(strings.Repeat(" ", p.width))

		case partTab:
			labelW := lipgloss.Width(p.label)
			line.WriteString(a.zones.Mark(tabZone(p.page.ID), p.label))
			line.WriteString(a.zones.Mark(triggerZone(p.page.ID), p.trigger))
			a.layout.tabs[p.page.ID] = pages.Rect{Left: x, Top: row, Right: x + p.width, Bottom: row + 1}
			a.layout.triggers[p.page.ID] = pages.Rect{Left: x + labelW, Top: row, Right: x + p.width, Bottom: row + 1}
			if p.page.ID == a.nav.Store.Active() {
				under.WriteString(TabUnderlineStyle.Render(strings.Repeat("▔", p.width)))
			} else {
				under.WriteString(strings.Repeat(" ", p.width))
			}

		case partAddEnd:
			line.WriteString(" ")
			line.WriteString(a.zones.Mark(addEndZone, p.label))
			under.WriteString(strings.Repeat(" ", p.width+1))
			x++
		}
		x += p.width
	}

	if clipR {
		line.WriteString(DescriptionStyle.Render(scrollRight))
	}

	return line.String() + "\n" + under.String()
}

// renderBody shows the selected page.
func (a *App) renderBody(height int) string {
	style := lipgloss.NewStyle().Padding(1, 2).Width(a.width).Height(height)

	if a.nav.Store.Len() == 0 {
		return style.Render(DescriptionStyle.Render("No pages. Press a or click + to add one."))
	}

	page, ok := a.nav.Store.ActivePage()
	if !ok {
		return style.Render(DescriptionStyle.Render("No page selected."))
	}

	idx := a.nav.Store.ActiveIndex()
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("PAGE %d OF %d", idx+1, a.nav.Store.Len())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(iconGlyph(a.nav.Store.IconAt(idx)) + "  " + page.Name))
	b.WriteString("\n")
	b.WriteString(DescriptionStyle.Render(fmt.Sprintf("%s page • id %s", a.nav.Store.IconAt(idx), page.ID)))

	if a.nav.Drag.Dragging() {
		dragged, _ := a.nav.Store.Page(a.nav.Drag.PageID())
		b.WriteString("\n\n")
		hint := fmt.Sprintf("Dragging “%s”", dragged.Name)
		if slot, ok := a.nav.Drag.HoverSlot(); ok {
			hint += fmt.Sprintf(" → slot %d", slot)
		}
		b.WriteString(DropZoneActiveStyle.Render(hint))
	}

	return style.Render(b.String())
}
