// Package config loads rune's settings.
//
// # Sources
//
// Settings are resolved in layers, later layers winning:
//
//	┌─────────────────────────────┐
//	│  3. RUNE_* environment      │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Config file             │  ← rune.toml (or .yaml/.yml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing file is not an error. A file that fails to parse leaves the
// defaults in place and Load returns a *ParseError. Values out of range
// are reset to their defaults and reported as *ValidationError, so
// callers can log the problem and keep running with the returned Config.
//
// # Configuration Files
//
// The format is chosen by extension; anything other than .yaml or .yml
// is read as TOML:
//
//	# rune.toml
//	theme = "light"
//	show_line_numbers = true
//	tab_size = 4
//	log_level = "info"
//	scripts = ["init.lua"]
//	watch = true
//
// Relative script paths resolve against the directory of the config file.
//
// # Live Reload
//
// NewWatcher follows the file with fsnotify and delivers a freshly loaded
// Config on Updates after a short debounce. Load errors go to Errors.
//
// # Schema
//
// Schema returns a JSON Schema describing the file, generated from the
// struct tags on Config.
package config
