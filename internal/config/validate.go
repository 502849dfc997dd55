package config

import (
	"errors"
	"strings"

	"github.com/dshills/rune/internal/logging"
)

// Validate resets every invalid setting to its default and returns an
// error listing what was reset, or nil.
func (c *Config) Validate() error {
	def := Default()
	var errs []error

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		errs = append(errs, &ValidationError{
			Path:    "theme",
			Message: "must be dark or light",
			Value:   c.Theme,
			Code:    ErrCodeInvalidEnum,
		})
		c.Theme = def.Theme
	}

	if c.TabSize < MinTabSize || c.TabSize > MaxTabSize {
		errs = append(errs, &ValidationError{
			Path:    "tab_size",
			Message: "must be between 1 and 16",
			Value:   c.TabSize,
			Code:    ErrCodeOutOfRange,
		})
		c.TabSize = def.TabSize
	}

	if level, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "log_level",
			Message: "must be debug, info, warn or error",
			Value:   c.LogLevel,
			Code:    ErrCodeInvalidEnum,
		})
		c.LogLevel = def.LogLevel
	} else {
		c.LogLevel = strings.ToLower(level.String())
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level, or info when it is invalid.
func (c Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
