package backend

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rune/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		// tcell drops Shift from printable runes; the case is in the rune.
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift), key.NewRuneEvent('G', key.ModNone)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.NewRuneEvent('x', key.ModAlt)},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), key.NewRuneEvent('r', key.ModCtrl)},
		{"ctrl l", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), key.NewRuneEvent('l', key.ModCtrl)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyDelete, key.ModNone)},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyUp, key.ModNone)},
		{"ctrl left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), key.NewSpecialEvent(key.KeyLeft, key.ModCtrl)},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyPageDown, key.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatal("key not converted")
			}
			if got != tt.want {
				t.Errorf("convertKey() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConvertUnsupportedKey(t *testing.T) {
	if _, ok := convertKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("F5 should not convert")
	}
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term, sim
}

// waitFor returns the first event matching pred, dropping others.
func waitFor(t *testing.T, events <-chan Event, pred func(Event) bool) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("events channel closed")
			}
			if pred(ev) {
				return ev
			}
		case <-deadline:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestTerminalEvents(t *testing.T) {
	term, sim := newSimTerminal(t)

	if err := sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	ev := waitFor(t, term.Events(), func(e Event) bool { return e.Type == EventKey })
	if ev.Key != key.NewRuneEvent('q', key.ModNone) {
		t.Errorf("key = %#v", ev.Key)
	}

	if err := sim.PostEvent(tcell.NewEventResize(100, 40)); err != nil {
		t.Fatal(err)
	}
	ev = waitFor(t, term.Events(), func(e Event) bool {
		return e.Type == EventResize && e.Width == 100
	})
	if ev.Height != 40 {
		t.Errorf("resize = %dx%d, want 100x40", ev.Width, ev.Height)
	}
}

func TestTerminalDrawing(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.SetSize(20, 5)

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	term.SetContent(3, 2, 'Z', style)
	term.Show()

	r, _, got, _ := sim.GetContent(3, 2) //nolint:staticcheck // GetContent is the correct API
	if r != 'Z' || got != style {
		t.Errorf("cell = %q %v", r, got)
	}

	term.ShowCursor(4, 1)
	term.SetCursorStyle(CursorBar)
	term.Show()
	x, y, visible := sim.GetCursor()
	if x != 4 || y != 1 || !visible {
		t.Errorf("cursor = %d,%d visible=%v", x, y, visible)
	}

	if w, h := term.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = %d,%d", w, h)
	}
}

func TestTerminalShutdownClosesEvents(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.Shutdown()
	term.Shutdown()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-term.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after Shutdown")
		}
	}
}

func TestNullBackend(t *testing.T) {
	b := NewNullBackend(10, 3)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}

	style := tcell.StyleDefault.Bold(true)
	b.SetContent(0, 0, 'h', style)
	b.SetContent(1, 0, 'i', style)
	b.SetContent(-1, 0, 'x', style)
	b.SetContent(10, 0, 'x', style)

	if got := b.Row(0); got != "hi        " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := b.CellAt(0, 0); c.Style != style {
		t.Errorf("style not kept")
	}

	b.ShowCursor(2, 1)
	b.SetCursorStyle(CursorBar)
	b.Show()
	if x, y, visible := b.Cursor(); x != 2 || y != 1 || !visible {
		t.Errorf("Cursor() = %d,%d,%v", x, y, visible)
	}
	if b.CursorStyle() != CursorBar || b.Shows() != 1 {
		t.Errorf("style %v shows %d", b.CursorStyle(), b.Shows())
	}

	b.Clear()
	if got := b.Row(0); got != "          " {
		t.Errorf("Row(0) after Clear = %q", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Post(KeyEvent(key.NewRuneEvent('a', key.ModNone)))
	b.Resize(40, 12)

	if ev := <-b.Events(); ev.Type != EventKey || ev.Key.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	if ev := <-b.Events(); ev != ResizeEvent(40, 12) {
		t.Errorf("second event = %+v", ev)
	}
	if w, h := b.Size(); w != 40 || h != 12 {
		t.Errorf("Size() = %d,%d", w, h)
	}

	b.Shutdown()
	b.Shutdown()
	b.Post(KeyEvent(key.NewRuneEvent('b', key.ModNone)))
	if _, ok := <-b.Events(); ok {
		t.Error("events channel should be closed")
	}
}
