// Package editor ties the text buffer, cursor resolver, undo history,
// search and mode state machine into the single editing aggregate.
//
// An Editor consumes one key event at a time through HandleKey and is
// not safe for concurrent use. The application event loop owns it and
// the renderer reads it through Snapshot.
package editor

import (
	"github.com/dshills/rune/internal/engine/buffer"
	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/engine/history"
	"github.com/dshills/rune/internal/engine/search"
	"github.com/dshills/rune/internal/input/key"
	"github.com/dshills/rune/internal/input/mode"
	"github.com/dshills/rune/internal/input/vim"
	"github.com/dshills/rune/internal/logging"
	"github.com/dshills/rune/internal/vfs"
)

// WelcomeMessage is the status message of a fresh editor.
const WelcomeMessage = "Welcome to RUNE! Press ':' for commands."

// Default viewport used until the first resize.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Viewport is the terminal size in cells. The last row is reserved for
// the status line.
type Viewport struct {
	Cols int
	Rows int
}

// TextRows returns the number of rows available for document text.
func (v Viewport) TextRows() int {
	return max(v.Rows-1, 1)
}

// Option configures an Editor.
type Option func(*Editor)

// WithFS sets the file system used by Open and Save.
func WithFS(fs vfs.FS) Option {
	return func(e *Editor) {
		if fs != nil {
			e.fs = fs
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l.WithComponent("editor")
		}
	}
}

// WithViewport sets the initial viewport size.
func WithViewport(cols, rows int) Option {
	return func(e *Editor) {
		e.Resize(cols, rows)
	}
}

// WithContent sets the initial document text.
func WithContent(text string) Option {
	return func(e *Editor) {
		e.buf = buffer.NewBufferFromString(text)
	}
}

// WithTabSize sets the tab stop width used to measure horizontal scroll.
func WithTabSize(n int) Option {
	return func(e *Editor) {
		e.tabSize = normalizeTabSize(n)
	}
}

// WithLineNumbers reserves a line-number gutter when computing the
// horizontal scroll.
func WithLineNumbers(on bool) Option {
	return func(e *Editor) {
		e.lineNumbers = on
	}
}

// Editor is the editing aggregate.
type Editor struct {
	buf       *buffer.Buffer
	cursor    cursor.Position
	scrollPos cursor.Position
	viewport  Viewport

	modes     *mode.Manager
	pending   vim.Operator
	command   string
	clipboard string

	history *history.History[buffer.Snapshot]
	search  search.State

	filePath    string
	status      string
	quit        bool
	lineNumbers bool
	tabSize     int

	fs     vfs.FS
	logger *logging.Logger
}

// New creates an editor with an empty document in Normal mode.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:      buffer.NewBuffer(),
		viewport: Viewport{Cols: DefaultCols, Rows: DefaultRows},
		modes:    mode.NewManager(),
		history:  history.New[buffer.Snapshot](history.DefaultMaxEntries),
		status:   WelcomeMessage,
		tabSize:  DefaultTabSize,
		fs:       vfs.NewOSFS(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleKey processes one key event.
func (e *Editor) HandleKey(ev key.Event) {
	switch e.modes.Current() {
	case mode.Normal:
		e.handleNormal(ev)
		e.scroll()
	case mode.Insert:
		e.handleInsert(ev)
		e.scroll()
	case mode.Command:
		if e.handleCommand(ev) {
			e.scroll()
		}
	case mode.Visual:
		// Never entered.
	}
}

// Resize updates the viewport. The cursor and document are unchanged;
// the scroll offset follows on the next handled key.
func (e *Editor) Resize(cols, rows int) {
	e.viewport = Viewport{Cols: max(cols, 1), Rows: max(rows, 1)}
}

// Viewport returns the current viewport.
func (e *Editor) Viewport() Viewport {
	return e.viewport
}

// OnModeChange registers fn to run after every mode transition and
// returns a function that unregisters it.
func (e *Editor) OnModeChange(fn func(from, to mode.Mode)) func() {
	return e.modes.OnChange(fn)
}

// SetLineNumbers toggles the line-number gutter.
func (e *Editor) SetLineNumbers(on bool) {
	e.lineNumbers = on
	e.scroll()
}

// SetTabSize sets the tab stop width. Values below 1 restore the default.
func (e *Editor) SetTabSize(n int) {
	e.tabSize = normalizeTabSize(n)
	e.scroll()
}

// TabSize returns the tab stop width.
func (e *Editor) TabSize() int {
	return e.tabSize
}

// Text returns the document text.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// LineCount returns the number of lines in the document.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// Line returns the text of line row without its newline, or "" when
// row is out of range.
func (e *Editor) Line(row int) string {
	if row < 0 || row >= e.buf.LineCount() {
		return ""
	}
	return e.buf.LineText(row)
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() cursor.Position {
	return e.cursor
}

// ScrollOffset returns the top-left visible cell.
func (e *Editor) ScrollOffset() cursor.Position {
	return e.scrollPos
}

// Mode returns the current mode.
func (e *Editor) Mode() mode.Mode {
	return e.modes.Current()
}

// Pending returns the pending operator, or OpNone.
func (e *Editor) Pending() vim.Operator {
	return e.pending
}

// CommandBuffer returns the command line being typed.
func (e *Editor) CommandBuffer() string {
	return e.command
}

// Clipboard returns the last deleted or yanked text.
func (e *Editor) Clipboard() string {
	return e.clipboard
}

// UndoDepth returns the number of available undo steps.
func (e *Editor) UndoDepth() int {
	return e.history.UndoDepth()
}

// RedoDepth returns the number of available redo steps.
func (e *Editor) RedoDepth() int {
	return e.history.RedoDepth()
}

// FilePath returns the associated file path, or "" if none.
func (e *Editor) FilePath() string {
	return e.filePath
}

// SetFilePath associates the document with path without reading it.
func (e *Editor) SetFilePath(path string) {
	e.filePath = path
}

// Status returns the status message.
func (e *Editor) Status() string {
	return e.status
}

// SetStatus replaces the status message.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
}

// ShouldQuit reports whether a quit was requested.
func (e *Editor) ShouldQuit() bool {
	return e.quit
}

func (e *Editor) offset() int {
	return cursor.ToOffset(e.buf, e.cursor)
}

// snapshot records the current document for undo.
func (e *Editor) snapshot() {
	e.history.Snapshot(e.buf.Snapshot())
}

func (e *Editor) undo() {
	prev, err := e.history.Undo(e.buf.Snapshot())
	if err != nil {
		return
	}
	e.buf.Restore(prev)
	e.cursor = cursor.Clamp(e.buf, e.cursor)
}

func (e *Editor) redo() {
	next, err := e.history.Redo(e.buf.Snapshot())
	if err != nil {
		return
	}
	e.buf.Restore(next)
	e.cursor = cursor.Clamp(e.buf, e.cursor)
}

// scroll keeps the cursor inside the visible window.
func (e *Editor) scroll() {
	rows := e.viewport.TextRows()
	cols := max(e.viewport.Cols-e.gutter(), 1)

	if e.cursor.Row < e.scrollPos.Row {
		e.scrollPos.Row = e.cursor.Row
	}
	if e.cursor.Row >= e.scrollPos.Row+rows {
		e.scrollPos.Row = e.cursor.Row - rows + 1
	}
	if e.cursor.Col < e.scrollPos.Col {
		e.scrollPos.Col = e.cursor.Col
	}

	// Every cell is at least one column wide, so the window can start no
	// earlier than cols characters before the cursor.
	e.scrollPos.Col = max(e.scrollPos.Col, e.cursor.Col-cols+1)
	line := []rune(e.buf.LineText(e.cursor.Row))
	for e.scrollPos.Col < e.cursor.Col && spanWidth(line, e.scrollPos.Col, e.cursor.Col, e.tabSize) > cols {
		e.scrollPos.Col++
	}
}

func normalizeTabSize(n int) int {
	if n < 1 {
		return DefaultTabSize
	}
	return n
}

func (e *Editor) gutter() int {
	if !e.lineNumbers {
		return 0
	}
	return GutterWidth(e.buf.LineCount())
}
