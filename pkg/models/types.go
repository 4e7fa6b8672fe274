package models

// Page is a single tab in the page bar. ID is assigned once at creation and
// never changes; Name is what the user sees and edits.
type Page struct {
	ID   string `json:"id" yaml:"id,omitempty" mapstructure:"id"`
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// PageIconType is derived from a page's position, never stored.
type PageIconType string

const (
	IconInfo     PageIconType = "info"
	IconDocument PageIconType = "document"
	IconEnding   PageIconType = "ending"
)

// IconTypeAt returns the icon for the page at index in a list of total pages.
func IconTypeAt(index, total int) PageIconType {
	switch {
	case total <= 0 || index < 0 || index >= total:
		return IconDocument
	case index == 0:
		return IconInfo
	case index == total-1:
		return IconEnding
	default:
		return IconDocument
	}
}

// ContextMenuState is the open settings menu: which page it acts on and the
// top-left cell where it is drawn.
type ContextMenuState struct {
	PageID string `json:"page_id" yaml:"page_id"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
}
