package editor

import (
	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/input/key"
	"github.com/dshills/rune/internal/input/mode"
	"github.com/dshills/rune/internal/input/vim"
)

func (e *Editor) handleNormal(ev key.Event) {
	if e.pending != vim.OpNone {
		e.handlePending(ev)
		return
	}
	if ev.IsCtrlRune('r') {
		e.redo()
		return
	}
	if !ev.IsRune() {
		return
	}

	switch ev.Rune {
	case 'i':
		e.snapshot()
		e.modes.Switch(mode.Insert)
	case 'q':
		e.quit = true
	case 'g':
		e.cursor = cursor.Position{}
	case 'G':
		e.cursor = cursor.Position{Row: e.buf.LineCount() - 1}
	case 'd', 'y':
		e.pending, _ = vim.OperatorForKey(ev.Rune)
	case 'p':
		e.paste()
	case ':', '/':
		e.command = string(ev.Rune)
		e.modes.Switch(mode.Command)
	case 'n':
		e.findNext()
	case 'N':
		e.findPrevious()
	case 'u':
		e.undo()
	default:
		if m, ok := vim.MotionForKey(ev.Rune); ok {
			e.applyMotion(m)
		}
	}
}

// handlePending completes or cancels the pending operator. Keys that are
// neither a motion nor Escape are dropped.
func (e *Editor) handlePending(ev key.Event) {
	if ev.Key == key.KeyEscape {
		e.pending = vim.OpNone
		return
	}
	if !ev.IsRune() {
		return
	}
	m, ok := vim.MotionForKey(ev.Rune)
	if !ok {
		return
	}
	op := e.pending
	e.pending = vim.OpNone
	e.executeOperator(op, m)
}

// applyMotion moves the cursor as the motion would standalone.
func (e *Editor) applyMotion(m vim.Motion) {
	if dr, dc, ok := m.Delta(); ok {
		e.cursor = cursor.Move(e.buf, e.cursor, dr, dc)
		return
	}
	switch m {
	case vim.MotionWordForward:
		e.cursor = cursor.FromOffset(e.buf, vim.NextWordStart(e.buf, e.offset()))
	case vim.MotionWordBackward:
		e.cursor = cursor.FromOffset(e.buf, vim.PrevWordStart(e.buf, e.offset()))
	case vim.MotionLineStart:
		e.cursor.Col = 0
	case vim.MotionLineEnd:
		e.cursor.Col = cursor.MaxCol(e.buf, e.cursor.Row)
	}
}

func (e *Editor) paste() {
	if e.clipboard == "" {
		return
	}
	e.snapshot()
	e.buf.InsertText(e.offset(), e.clipboard)
	e.cursor = cursor.Clamp(e.buf, e.cursor)
}

func (e *Editor) findNext() {
	if off, ok := e.search.FindNext(e.buf, e.offset()); ok {
		e.cursor = cursor.FromOffset(e.buf, off)
	}
}

func (e *Editor) findPrevious() {
	if off, ok := e.search.FindPrevious(e.buf, e.offset()); ok {
		e.cursor = cursor.FromOffset(e.buf, off)
	}
}
