package pages

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pagetabs/pkg/models"
)

const (
	// NewPageName is the first name tried for an added page.
	NewPageName = "New Page"

	copyLabel      = "Copy"
	duplicateLabel = "Duplicate"
)

// nameSet is a membership set of page names.
type nameSet map[string]struct{}

func namesOf(list []models.Page) nameSet {
	set := make(nameSet, len(list))
	for _, p := range list {
		set[p.Name] = struct{}{}
	}
	return set
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// newPageName picks the name for a page added to a list of count pages.
// "New Page" is tried first, then "New Page {n}" for n = count+1, count+2, ...
// At most count+1 numbered names are probed; with only count names in use one
// of them is always free, so fallback only guards a corrupted set.
func newPageName(used nameSet, count int, fallback func() string) string {
	if !used.has(NewPageName) {
		return NewPageName
	}
	for n := count + 1; n <= 2*count+1; n++ {
		candidate := fmt.Sprintf("%s %d", NewPageName, n)
		if !used.has(candidate) {
			return candidate
		}
	}
	return fallback()
}

// derivedName returns "{base} ({label})" or "{base} ({label} {n})" with the
// smallest n >= 2 that is not already used.
func derivedName(used nameSet, base, label string) string {
	candidate := fmt.Sprintf("%s (%s)", base, label)
	for n := 2; used.has(candidate); n++ {
		candidate = fmt.Sprintf("%s (%s %d)", base, label, n)
	}
	return candidate
}

// fallbackName builds "Page {xxxx}" from the first characters of an id.
func fallbackName(id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 4 {
		short = short[:4]
	}
	return "Page " + short
}

// CleanName trims user input for a rename. ok is false when nothing remains.
func CleanName(raw string) (name string, ok bool) {
	name = strings.TrimSpace(raw)
	return name, name != ""
}
