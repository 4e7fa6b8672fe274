package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setOf(names ...string) nameSet {
	s := nameSet{}
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func TestNewPageNameFallback(t *testing.T) {
	// A set that claims every candidate is taken forces the fallback.
	used := setOf("New Page", "New Page 2", "New Page 3")
	got := newPageName(used, 1, func() string { return "Page abcd" })
	assert.Equal(t, "Page abcd", got)
}

func TestFallbackName(t *testing.T) {
	assert.Equal(t, "Page 1b4e", fallbackName("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.Equal(t, "Page ab", fallbackName("ab"))
}

func TestDerivedName(t *testing.T) {
	assert.Equal(t, "A (Copy)", derivedName(setOf("A"), "A", copyLabel))
	assert.Equal(t, "A (Copy 2)", derivedName(setOf("A", "A (Copy)"), "A", copyLabel))
	assert.Equal(t, "A (Duplicate 4)", derivedName(setOf("A (Duplicate)", "A (Duplicate 2)", "A (Duplicate 3)"), "A", duplicateLabel))
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Summary", "Summary", true},
		{"  padded  ", "padded", true},
		{"", "", false},
		{" \t ", "", false},
	}
	for _, tt := range tests {
		got, ok := CleanName(tt.in)
		assert.Equal(t, tt.want, got, "CleanName(%q)", tt.in)
		assert.Equal(t, tt.wantOK, ok, "CleanName(%q)", tt.in)
	}
}
