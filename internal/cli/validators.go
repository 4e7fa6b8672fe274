package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/pagetabs/pkg/pages"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	if Contains([]string{"text", "json", "yaml"}, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidatePageName trims a page name and rejects blank input
func ValidatePageName(name string) (string, error) {
	cleaned, ok := pages.CleanName(name)
	if !ok {
		return "", pages.ErrEmptyName
	}
	return cleaned, nil
}

// ParseSlot parses an insertion slot in [0, max]
func ParseSlot(s string, max int) (int, error) {
	slot, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q: must be a number", s)
	}
	if slot < 0 || slot > max {
		return 0, fmt.Errorf("slot %d out of range (0-%d)", slot, max)
	}
	return slot, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
