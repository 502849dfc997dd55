package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rune/internal/input/key"
)

// eventBuffer is the capacity of the Events channel.
const eventBuffer = 64

// Terminal implements Backend using tcell.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup

	started bool
	stopped bool
}

// NewTerminal creates a terminal backend on the process's terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal backend on an existing screen,
// such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.started = true

	t.wg.Add(1)
	go t.pollLoop()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	if !t.started || t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	close(t.done)
	t.screen.Fini()
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, style)
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	default:
		tcellStyle = tcell.CursorStyleSteadyBlock
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) Events() <-chan Event {
	return t.events
}

// pollLoop converts tcell events until the screen is finalized.
func (t *Terminal) pollLoop() {
	defer t.wg.Done()
	defer close(t.events)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		out, ok := convertEvent(ev)
		if !ok {
			continue
		}
		select {
		case t.events <- out:
		case <-t.done:
			return
		}
	}
}

// convertEvent converts a tcell event. Unsupported events report false.
func convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{}, false
		}
		return KeyEvent(k), true

	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent(w, h), true

	default:
		return Event{}, false
	}
}

// convertKey converts a tcell key event. Control letters become the
// letter with ModCtrl so the editor can match them by rune.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	// Tab, Enter, Backspace and Escape share codes with Ctrl-I, Ctrl-M,
	// Ctrl-H and Ctrl-[, so they are checked first.
	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods&^key.ModCtrl), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods&^key.ModCtrl), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods&^key.ModCtrl), true
	case tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods&^key.ModCtrl), true
	}
	if k == tcell.KeyBackspace {
		return key.NewSpecialEvent(key.KeyBackspace, mods&^key.ModCtrl), true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods|key.ModCtrl), true
	}

	if named, ok := namedKeys[k]; ok {
		return key.NewSpecialEvent(named, mods), true
	}
	return key.Event{}, false
}

var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyDelete: key.KeyDelete,
	tcell.KeyInsert: key.KeyInsert,
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyPgUp:   key.KeyPageUp,
	tcell.KeyPgDn:   key.KeyPageDown,
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}
