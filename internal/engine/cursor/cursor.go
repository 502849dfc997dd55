package cursor

import "fmt"

// Document is the read side of a text buffer needed to resolve positions.
// *buffer.Buffer satisfies it.
type Document interface {
	Len() int
	LineCount() int
	LineLen(row int) int
	LineToChar(row int) int
	CharToLine(offset int) int
}

// Position is a zero-based (row, column) location in a document.
// Columns count characters, not bytes or cells.
type Position struct {
	Row int
	Col int
}

// String returns a 1-based "row:col" representation.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

// ToOffset converts a position to a character offset.
func ToOffset(doc Document, p Position) int {
	return doc.LineToChar(p.Row) + p.Col
}

// FromOffset converts a character offset to a position.
// ToOffset(doc, FromOffset(doc, o)) == o for every o in [0, Len].
func FromOffset(doc Document, offset int) Position {
	offset = max(0, min(offset, doc.Len()))
	row := doc.CharToLine(offset)
	return Position{Row: row, Col: offset - doc.LineToChar(row)}
}

// Move applies a relative move and clamps the result. The row is clamped
// first; the column is then clamped against the destination row.
func Move(doc Document, p Position, rowDelta, colDelta int) Position {
	row := max(0, min(p.Row+rowDelta, doc.LineCount()-1))
	return Position{Row: row, Col: clampCol(doc, row, p.Col+colDelta)}
}

// Clamp moves p to the nearest position a motion may land on.
func Clamp(doc Document, p Position) Position {
	return Move(doc, p, 0, 0)
}

// MaxCol returns the last column a motion may land on in row.
func MaxCol(doc Document, row int) int {
	return max(doc.LineLen(row)-1, 0)
}

func clampCol(doc Document, row, col int) int {
	return max(0, min(col, MaxCol(doc, row)))
}
