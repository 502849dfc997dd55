package config

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "rune.toml"

// Themes known to the renderer.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Tab size bounds.
const (
	MinTabSize = 1
	MaxTabSize = 16
)

// Config holds the editor settings.
type Config struct {
	// Theme selects the color palette.
	Theme string `toml:"theme" yaml:"theme" json:"theme,omitempty" jsonschema:"enum=dark,enum=light,default=dark,description=Color theme"`

	// ShowLineNumbers enables the line-number gutter.
	ShowLineNumbers bool `toml:"show_line_numbers" yaml:"show_line_numbers" json:"show_line_numbers,omitempty" jsonschema:"default=true,description=Show the line-number gutter"`

	// TabSize is the display width of a tab character.
	TabSize int `toml:"tab_size" yaml:"tab_size" json:"tab_size,omitempty" jsonschema:"minimum=1,maximum=16,default=4,description=Display width of a tab"`

	// LogLevel is the minimum level written to the log file.
	LogLevel string `toml:"log_level" yaml:"log_level" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info,description=Minimum log level"`

	// Scripts lists Lua files run at startup.
	Scripts []string `toml:"scripts" yaml:"scripts" json:"scripts,omitempty" jsonschema:"description=Lua scripts run at startup"`

	// Watch reloads the config file when it changes.
	Watch bool `toml:"watch" yaml:"watch" json:"watch,omitempty" jsonschema:"default=true,description=Reload the config file on change"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:           ThemeDark,
		ShowLineNumbers: true,
		TabSize:         4,
		LogLevel:        "info",
		Watch:           true,
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Scripts = slices.Clone(c.Scripts)
	return c
}

// Equal reports whether two configs hold the same settings.
func (c Config) Equal(other Config) bool {
	return c.Theme == other.Theme &&
		c.ShowLineNumbers == other.ShowLineNumbers &&
		c.TabSize == other.TabSize &&
		c.LogLevel == other.LogLevel &&
		c.Watch == other.Watch &&
		slices.Equal(c.Scripts, other.Scripts)
}

// ResolveScripts returns the script paths with relative entries joined
// to the directory of the config file at configPath.
func (c Config) ResolveScripts(configPath string) []string {
	dir := filepath.Dir(configPath)
	out := make([]string, 0, len(c.Scripts))
	for _, s := range c.Scripts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !filepath.IsAbs(s) {
			s = filepath.Join(dir, s)
		}
		out = append(out, s)
	}
	return out
}

// Format is a config file syntax.
type Format uint8

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	// FormatYAML is used for .yaml and .yml files.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
