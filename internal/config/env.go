package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RUNE_"

// Environment variables that override file settings.
const (
	EnvTheme           = EnvPrefix + "THEME"
	EnvShowLineNumbers = EnvPrefix + "SHOW_LINE_NUMBERS"
	EnvTabSize         = EnvPrefix + "TAB_SIZE"
	EnvLogLevel        = EnvPrefix + "LOG_LEVEL"
)

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from environment variables. Values that
// cannot be parsed are skipped and reported.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}

	var errs []error
	if v, ok := lookup(EnvTheme); ok {
		c.Theme = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvShowLineNumbers); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvShowLineNumbers, v))
		} else {
			c.ShowLineNumbers = b
		}
	}
	if v, ok := lookup(EnvTabSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvTabSize, v))
		} else {
			c.TabSize = n
		}
	}
	return errors.Join(errs...)
}
