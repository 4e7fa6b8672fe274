package models

// Settings represents the application configuration
type Settings struct {
	Pages   []Page          `yaml:"pages" mapstructure:"pages"`
	UI      UISettings      `yaml:"ui" mapstructure:"ui"`
	Logging LoggingSettings `yaml:"logging" mapstructure:"logging"`
}

// UISettings controls how the page bar is drawn and driven
type UISettings struct {
	MenuWidth     int  `yaml:"menu_width" mapstructure:"menu_width"`
	MenuMargin    int  `yaml:"menu_margin" mapstructure:"menu_margin"`
	MenuGap       int  `yaml:"menu_gap" mapstructure:"menu_gap"`
	NameMaxWidth  int  `yaml:"name_max_width" mapstructure:"name_max_width"`
	Mouse         bool `yaml:"mouse" mapstructure:"mouse"`
	ConfirmDelete bool `yaml:"confirm_delete" mapstructure:"confirm_delete"`
	ShowHelp      bool `yaml:"show_help" mapstructure:"show_help"`
}

// LoggingSettings controls where diagnostics go
type LoggingSettings struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"` // empty discards TUI logs
}

// DefaultPages is the seed used when no settings file lists pages
func DefaultPages() []Page {
	return []Page{
		{Name: "Info"},
		{Name: "Details"},
		{Name: "Other"},
		{Name: "Ending"},
	}
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Pages: DefaultPages(),
		UI: UISettings{
			MenuWidth:     24,
			MenuMargin:    1,
			MenuGap:       1,
			NameMaxWidth:  18,
			Mouse:         true,
			ConfirmDelete: false,
			ShowHelp:      true,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// Normalize fills zero values left by a partial settings file.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	if s.UI.MenuWidth <= 0 {
		s.UI.MenuWidth = def.UI.MenuWidth
	}
	if s.UI.MenuMargin < 0 {
		s.UI.MenuMargin = def.UI.MenuMargin
	}
	if s.UI.MenuGap < 0 {
		s.UI.MenuGap = def.UI.MenuGap
	}
	if s.UI.NameMaxWidth <= 0 {
		s.UI.NameMaxWidth = def.UI.NameMaxWidth
	}
	if s.Logging.Level == "" {
		s.Logging.Level = def.Logging.Level
	}
}
