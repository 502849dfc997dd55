package editor

import (
	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/input/key"
	"github.com/dshills/rune/internal/input/mode"
)

func (e *Editor) handleInsert(ev key.Event) {
	switch ev.Key {
	case key.KeyEscape:
		e.modes.Switch(mode.Normal)
	case key.KeyEnter:
		e.insertRune('\n')
	case key.KeyBackspace:
		if off := e.offset(); off > 0 {
			e.cursor = cursor.FromOffset(e.buf, off-1)
			e.buf.DeleteChar(off - 1)
		}
	case key.KeyRune:
		if ev.IsText() {
			e.insertRune(ev.Rune)
		}
	}
}

func (e *Editor) insertRune(r rune) {
	e.buf.InsertChar(e.offset(), r)
	if r == '\n' {
		e.cursor = cursor.Position{Row: e.cursor.Row + 1}
		return
	}
	e.cursor.Col++
}
