package mode

import "fmt"

// Mode is one of the editor's modes.
type Mode uint8

const (
	// Normal is the default mode: motions, operators and commands.
	Normal Mode = iota

	// Insert types text into the buffer.
	Insert

	// Command edits a ':' command or '/' search line.
	Command

	// Visual is reserved; the editor never enters it.
	Visual
)

// Name returns the lowercase mode identifier, e.g. "normal".
func (m Mode) Name() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Command:
		return "command"
	case Visual:
		return "visual"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return m.Name()
}

// DisplayName returns the upper-case label shown in the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	default:
		return "VISUAL"
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// FromName returns the mode with the given Name.
func FromName(name string) (Mode, bool) {
	for _, m := range All() {
		if m.Name() == name {
			return m, true
		}
	}
	return Normal, false
}

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Insert, Command, Visual}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
