package editor

import (
	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/input/vim"
)

// executeOperator applies op over the text spanned by motion m. An
// undo snapshot is taken even when the motion does not move the cursor.
func (e *Editor) executeOperator(op vim.Operator, m vim.Motion) {
	e.snapshot()

	before := e.cursor
	start := e.offset()
	e.applyMotion(m)
	lo, hi := operatorRange(start, e.offset())

	e.clipboard = e.buf.Slice(lo, hi)
	if op.ChangesText() {
		e.buf.RemoveRange(lo, hi)
		e.cursor = cursor.FromOffset(e.buf, lo)
	} else {
		e.cursor = before
	}

	e.logger.Debug("%s %s over [%d, %d)", op, m, lo, hi)
}

// operatorRange orders the offsets before and after a motion into a
// half-open range.
func operatorRange(start, end int) (int, int) {
	return min(start, end), max(start, end)
}
