// Package mode defines the editor's modes and tracks transitions.
//
// The mode set is closed: Normal, Insert, Command and Visual. Visual is
// part of the set so renderers and scripts can name it, but the editor
// never enters it.
//
// A Manager holds the current mode and notifies registered callbacks
// after each transition:
//
//	m := mode.NewManager()
//	m.OnChange(func(from, to mode.Mode) { ... })
//	m.Switch(mode.Insert)
package mode
