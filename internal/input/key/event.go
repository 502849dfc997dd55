package key

import (
	"fmt"
	"unicode"
)

// Event is a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a named key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// HasCtrl returns true if Control is held.
func (e Event) HasCtrl() bool {
	return e.Modifiers.Has(ModCtrl)
}

// IsText returns true if the event should be typed as text: a rune
// with neither Ctrl nor Alt held. Shift only changes the character.
func (e Event) IsText() bool {
	return e.IsRune() && !e.Modifiers.Has(ModCtrl|ModAlt) &&
		(unicode.IsPrint(e.Rune) || e.Rune == '\n' || e.Rune == '\t')
}

// Is reports whether e is the named key with no modifiers.
func (e Event) Is(k Key) bool {
	return e.Key == k && e.Modifiers == ModNone
}

// IsCtrlRune reports whether e is Ctrl plus the given letter.
func (e Event) IsCtrlRune(r rune) bool {
	return e.IsRune() && e.HasCtrl() && unicode.ToLower(e.Rune) == r
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e == other
}

// String returns the event in Vim notation, e.g. "a", "<C-r>", "<Esc>".
func (e Event) String() string {
	if e.Key == KeyRune {
		if e.Modifiers.Has(ModCtrl|ModAlt|ModMeta) {
			return "<" + e.Modifiers.vimPrefix() + string(unicode.ToLower(e.Rune)) + ">"
		}
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		case '\n':
			return "<NL>"
		}
		return string(e.Rune)
	}
	return "<" + e.Modifiers.vimPrefix() + e.Key.String() + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, e.Modifiers)
}
