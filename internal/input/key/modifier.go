package key

import "strings"

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS).
	ModMeta
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns a representation like "Ctrl+Alt".
func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// vimPrefix returns the Vim notation prefix, e.g. "C-A-".
func (m Modifier) vimPrefix() string {
	var sb strings.Builder
	if m.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if m.Has(ModAlt) {
		sb.WriteString("A-")
	}
	if m.Has(ModShift) {
		sb.WriteString("S-")
	}
	if m.Has(ModMeta) {
		sb.WriteString("D-")
	}
	return sb.String()
}

// modifierFromVim parses a single Vim modifier letter.
func modifierFromVim(s string) (Modifier, bool) {
	switch strings.ToLower(s) {
	case "c":
		return ModCtrl, true
	case "a", "m":
		return ModAlt, true
	case "s":
		return ModShift, true
	case "d":
		return ModMeta, true
	}
	return ModNone, false
}
