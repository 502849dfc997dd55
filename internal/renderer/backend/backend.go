// Package backend provides the terminal abstraction the renderer draws to.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rune/internal/input/key"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorUnderline
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// KeyEvent returns an EventKey wrapping ev.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// ResizeEvent returns an EventResize for the given size.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Backend defines the interface for display backends.
type Backend interface {
	// Init initializes the backend. Must be called before any other method.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetContent sets a single cell. Positions outside the screen are ignored.
	SetContent(x, y int, r rune, style tcell.Style)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// Events delivers input events. The channel is closed on Shutdown.
	Events() <-chan Event
}

// Cell is a single cell held by NullBackend.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// NullBackend is an in-memory backend for tests and headless use.
type NullBackend struct {
	mu sync.Mutex

	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int

	events   chan Event
	shutdown bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	b.reset()
	return b
}

func (b *NullBackend) reset() {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{Rune: ' ', Style: tcell.StyleDefault}
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.shutdown {
		b.shutdown = true
		close(b.events)
	}
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) SetContent(x, y int, r rune, style tcell.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y][x] = Cell{Rune: r, Style: style}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.reset()
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorStyle = style
}

func (b *NullBackend) Events() <-chan Event {
	return b.events
}

// Post queues an event for delivery on Events. Events posted after
// Shutdown are dropped.
func (b *NullBackend) Post(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.shutdown {
		return
	}
	select {
	case b.events <- ev:
	default:
	}
}

// Resize changes the backend size and posts a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.reset()
	b.mu.Unlock()

	b.Post(ResizeEvent(width, height))
}

// CellAt returns the cell at the given position.
func (b *NullBackend) CellAt(x, y int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y][x]
}

// Row returns the runes of row y as a string.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		rs = append(rs, c.Rune)
	}
	return string(rs)
}

// Cursor returns the cursor position and whether it is visible.
func (b *NullBackend) Cursor() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyle returns the last cursor style set.
func (b *NullBackend) CursorStyle() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursorStyle
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shows
}
