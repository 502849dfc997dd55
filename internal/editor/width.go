package editor

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// DefaultTabSize is the tab stop width until SetTabSize is called.
const DefaultTabSize = 4

// Advance returns the display column after drawing ch at col. Tabs run to
// the next multiple of tabSize; non-printable runes take one cell.
func Advance(col int, ch rune, tabSize int) int {
	if ch == '\t' {
		tabSize = max(tabSize, 1)
		return col + tabSize - col%tabSize
	}
	if !unicode.IsPrint(ch) {
		return col + 1
	}
	return col + max(runewidth.RuneWidth(ch), 1)
}

// spanWidth is the display width of the cells from character from
// through character to, with tab stops measured from from. Positions past
// the end of line take one cell.
func spanWidth(line []rune, from, to, tabSize int) int {
	col := 0
	for i := from; i <= to; i++ {
		if i < len(line) {
			col = Advance(col, line[i], tabSize)
		} else {
			col++
		}
	}
	return col
}
