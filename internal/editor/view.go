package editor

import (
	"fmt"
	"strconv"

	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/input/mode"
	"github.com/dshills/rune/internal/input/vim"
)

// NoName is shown in place of the file name for an unsaved document.
const NoName = "[No Name]"

// View is a read-only copy of the state the renderer needs. Lines holds
// only the rows visible from Scroll.Row.
type View struct {
	Lines     []string
	LineCount int
	Cursor    cursor.Position
	Scroll    cursor.Position
	Viewport  Viewport
	Gutter    int
	TabSize   int
	Mode      mode.Mode
	Pending   vim.Operator
	Command   string
	Status    string
	FileName  string
}

// Snapshot captures the current state for rendering.
func (e *Editor) Snapshot() View {
	first := e.scrollPos.Row
	last := min(first+e.viewport.TextRows(), e.buf.LineCount())

	lines := make([]string, 0, max(last-first, 0))
	for row := first; row < last; row++ {
		lines = append(lines, e.buf.LineText(row))
	}

	name := e.filePath
	if name == "" {
		name = NoName
	}

	return View{
		Lines:     lines,
		LineCount: e.buf.LineCount(),
		Cursor:    e.cursor,
		Scroll:    e.scrollPos,
		Viewport:  e.viewport,
		Gutter:    e.gutter(),
		TabSize:   e.tabSize,
		Mode:      e.modes.Current(),
		Pending:   e.pending,
		Command:   e.command,
		Status:    e.status,
		FileName:  name,
	}
}

// StatusLine returns the status row text.
func (e *Editor) StatusLine() string {
	return e.Snapshot().StatusLine()
}

// ModeBadge returns the padded mode name, e.g. " NORMAL ".
func (v View) ModeBadge() string {
	return " " + v.Mode.DisplayName() + " "
}

// StatusText returns the part of the status line after the mode badge.
func (v View) StatusText() string {
	return fmt.Sprintf(" %s | L:%d, C:%d | %s", v.FileName, v.Cursor.Row+1, v.Cursor.Col+1, v.Status)
}

// StatusLine returns the command line in Command mode and the mode
// badge followed by the status text otherwise.
func (v View) StatusLine() string {
	if v.Mode == mode.Command {
		return v.Command
	}
	return v.ModeBadge() + v.StatusText()
}

// GutterWidth returns the width of the line-number column for a document
// of lineCount lines, including one separating space.
func GutterWidth(lineCount int) int {
	return max(len(strconv.Itoa(lineCount)), 3) + 1
}
