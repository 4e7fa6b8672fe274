package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pluqqy/pagetabs/pkg/models"
)

const (
	ConfigDir    = ".pagetabs"
	SettingsFile = "settings.yaml"
)

// ErrSettingsExist is returned by InitProjectStructure when a settings file is
// already present and force is false.
var ErrSettingsExist = errors.New("settings file already exists")

// DefaultSettingsPath returns the settings location relative to the working
// directory.
func DefaultSettingsPath() string {
	return filepath.Join(ConfigDir, SettingsFile)
}

// ResolveSettingsPath returns path, or the default location when path is empty.
func ResolveSettingsPath(path string) string {
	if path == "" {
		return DefaultSettingsPath()
	}
	return path
}

// InitProjectStructure creates the settings directory and writes the default
// settings to path. Seed pages get ids so they stay stable across runs.
func InitProjectStructure(path string, force bool) error {
	path = ResolveSettingsPath(path)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w", path, ErrSettingsExist)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	settings := models.DefaultSettings()
	for i := range settings.Pages {
		settings.Pages[i].ID = uuid.NewString()
	}
	return WriteSettings(path, settings)
}
