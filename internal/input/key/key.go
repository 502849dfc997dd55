package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key.
// Character keys use KeyRune with the character in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a character key.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Esc",
	KeyEnter:     "CR",
	KeyTab:       "Tab",
	KeyBackspace: "BS",
	KeyDelete:    "Del",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
}

// String returns the key's name in Vim notation.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsArrow returns true if this is an arrow key.
func (k Key) IsArrow() bool {
	return k >= KeyUp && k <= KeyRight
}

// keyAliases maps lowercase key names, including common Vim aliases,
// to keys.
var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"cr":        KeyEnter,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"ins":       KeyInsert,
	"insert":    KeyInsert,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
}

// runeAliases maps lowercase names to characters that are awkward to
// write literally inside <...>.
var runeAliases = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"bar":    '|',
	"bslash": '\\',
	"nl":     '\n',
}

// FromName returns the Key for a name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	if k, ok := keyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNone
}
