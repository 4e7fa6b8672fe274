package cli

import (
	"fmt"
	"strconv"
	"strings"

	"pkt.systems/pslog"

	"github.com/pluqqy/pagetabs/pkg/files"
	"github.com/pluqqy/pagetabs/pkg/models"
	"github.com/pluqqy/pagetabs/pkg/pages"
)

// CommandContext carries the settings and page store shared by commands
type CommandContext struct {
	SettingsPath string
	Settings     *models.Settings
	Log          pslog.Logger
}

// NewCommandContext creates a command context for the settings at path
func NewCommandContext(path string, log pslog.Logger) *CommandContext {
	return &CommandContext{
		SettingsPath: files.ResolveSettingsPath(path),
		Log:          log,
	}
}

// LoadSettings reads settings once and caches them
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := files.ReadSettings(c.SettingsPath)
	if err != nil {
		return nil, err
	}

	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		if c.Log != nil {
			c.Log.Warn("using default settings", "path", c.SettingsPath, "err", err)
		}
		settings = models.DefaultSettings()
		c.Settings = settings
	}
	return settings
}

// NewStore builds a page store seeded from the settings
func (c *CommandContext) NewStore(opts ...pages.Option) *pages.Store {
	settings := c.LoadSettingsWithDefault()
	if c.Log != nil {
		opts = append([]pages.Option{pages.WithLogger(c.Log)}, opts...)
	}
	return pages.NewStore(settings.Pages, opts...)
}

// MenuGeometry returns the menu placement constants from the settings
func MenuGeometry(settings *models.Settings) pages.MenuGeometry {
	return pages.MenuGeometry{
		Width:  settings.UI.MenuWidth,
		Margin: settings.UI.MenuMargin,
		Gap:    settings.UI.MenuGap,
	}
}

// PageResolver maps a user reference to a page id
type PageResolver struct {
	store *pages.Store
}

// NewPageResolver creates a resolver over store
func NewPageResolver(store *pages.Store) *PageResolver {
	return &PageResolver{store: store}
}

// Resolve accepts a 1-based position, an id, an exact name, or a
// case-insensitive name, in that order.
func (r *PageResolver) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty page reference")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if page, ok := r.store.At(n - 1); ok {
			return page.ID, nil
		}
		return "", fmt.Errorf("page %d: %w", n, pages.ErrPageNotFound)
	}

	if _, ok := r.store.Page(ref); ok {
		return ref, nil
	}

	list := r.store.Pages()
	for _, p := range list {
		if p.Name == ref {
			return p.ID, nil
		}
	}

	var matches []models.Page
	for _, p := range list {
		if strings.EqualFold(p.Name, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].ID, nil
	case 0:
		return "", fmt.Errorf("%q: %w", ref, pages.ErrPageNotFound)
	default:
		return "", fmt.Errorf("%q matches %d pages; use a position or id", ref, len(matches))
	}
}
