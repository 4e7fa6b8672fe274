package files

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pagetabs/pkg/models"
)

// EnvPrefix scopes environment overrides, e.g. PAGETABS_UI_MENU_WIDTH.
const EnvPrefix = "PAGETABS"

// ReadSettings loads settings from path, layering the file and environment
// overrides on top of the defaults. A missing file yields the defaults.
func ReadSettings(path string) (*models.Settings, error) {
	path = ResolveSettingsPath(path)
	def := models.DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ui.menu_width", def.UI.MenuWidth)
	v.SetDefault("ui.menu_margin", def.UI.MenuMargin)
	v.SetDefault("ui.menu_gap", def.UI.MenuGap)
	v.SetDefault("ui.name_max_width", def.UI.NameMaxWidth)
	v.SetDefault("ui.mouse", def.UI.Mouse)
	v.SetDefault("ui.confirm_delete", def.UI.ConfirmDelete)
	v.SetDefault("ui.show_help", def.UI.ShowHelp)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.file", def.Logging.File)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if !v.IsSet("pages") {
		settings.Pages = def.Pages
	}
	settings.Normalize()

	return &settings, nil
}

// LoadSettingsWithDefault returns the settings at path, or the defaults when
// they cannot be read.
func LoadSettingsWithDefault(path string) *models.Settings {
	settings, err := ReadSettings(path)
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}

// WriteSettings writes settings to path as YAML.
func WriteSettings(path string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
