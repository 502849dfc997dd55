package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/rune/internal/vfs"
)

// Load reads the config file at path from fsys, applies environment
// overrides and validates the result.
//
// A missing file is not an error. On a parse error the defaults (plus
// environment overrides) are returned together with a *ParseError. On a
// validation error the returned config has the offending settings reset.
func Load(fsys vfs.FS, path string) (Config, error) {
	return load(fsys, path, os.LookupEnv)
}

func load(fsys vfs.FS, path string, lookup LookupFunc) (Config, error) {
	cfg := Default()

	var errs []error
	data, err := fsys.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		errs = append(errs, fmt.Errorf("reading config file %s: %w", path, err))
	default:
		if err := Decode(path, data, &cfg); err != nil {
			cfg = Default()
			errs = append(errs, err)
		}
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

// Decode parses data in the format implied by path into cfg. Keys absent
// from data keep their current values in cfg.
func Decode(path string, data []byte, cfg *Config) error {
	switch FormatForPath(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			perr := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return perr
		}
	}
	return nil
}

// Encode renders cfg in the format implied by path.
func Encode(path string, cfg Config) ([]byte, error) {
	if FormatForPath(path) == FormatYAML {
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}
