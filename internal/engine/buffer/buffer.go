package buffer

import (
	"io"
	"strings"

	"github.com/dshills/rune/internal/engine/rope"
)

// LineEnding specifies the line ending style used when writing text out.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is the editable document. Internally it always stores "\n"
// line endings; positions are character (rune) offsets.
//
// Buffer is not safe for concurrent use. The editor owns it and
// mutates it from a single goroutine.
type Buffer struct {
	rope       rope.Rope
	lineEnding LineEnding
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		rope:       rope.New(),
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content.
// The dominant line ending of s is detected and kept for writing;
// options override it.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	opts = append([]Option{WithLineEnding(DetectLineEnding(s))}, opts...)
	b := NewBuffer(opts...)
	b.rope = rope.FromString(normalizeLineEndings(s))
	return b
}

// LineEnding returns the line ending used by WriteTo.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.rope.Len()
}

// IsEmpty returns true if the buffer contains no text.
func (b *Buffer) IsEmpty() bool {
	return b.rope.IsEmpty()
}

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return b.rope.LineCount()
}

// LineLen returns the character count of a line, excluding its newline.
// Rows out of range have length 0.
func (b *Buffer) LineLen(row int) int {
	return b.rope.LineLen(row)
}

// LineText returns the text of a line without its newline.
func (b *Buffer) LineText(row int) string {
	return b.rope.LineText(row)
}

// Lines returns the text of every line without newlines.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.LineCount())
	for i := range lines {
		lines[i] = b.rope.LineText(i)
	}
	return lines
}

// LineToChar returns the offset of the first character of row.
// Rows past the end map to Len().
func (b *Buffer) LineToChar(row int) int {
	return b.rope.LineToChar(row)
}

// CharToLine returns the row containing offset. Offsets at or past the
// end map to the last row.
func (b *Buffer) CharToLine(offset int) int {
	return b.rope.CharToLine(offset)
}

// CharAt returns the character at offset.
func (b *Buffer) CharAt(offset int) (rune, bool) {
	return b.rope.CharAt(offset)
}

// Slice returns the text in [start, end).
func (b *Buffer) Slice(start, end int) string {
	return b.rope.Slice(start, end)
}

// Text returns the full buffer content with "\n" line endings.
func (b *Buffer) Text() string {
	return b.rope.String()
}

// String implements fmt.Stringer.
func (b *Buffer) String() string {
	return b.Text()
}

// InsertChar inserts ch at offset. Does nothing if offset > Len().
func (b *Buffer) InsertChar(offset int, ch rune) {
	b.InsertText(offset, string(ch))
}

// DeleteChar removes the character at offset. Does nothing if
// offset >= Len().
func (b *Buffer) DeleteChar(offset int) {
	if offset < 0 || offset >= b.rope.Len() {
		return
	}
	b.rope = b.rope.Delete(offset, offset+1)
}

// InsertText inserts text at offset. Does nothing if offset is outside
// [0, Len()].
func (b *Buffer) InsertText(offset int, text string) {
	if offset < 0 || offset > b.rope.Len() || text == "" {
		return
	}
	b.rope = b.rope.Insert(offset, normalizeLineEndings(text))
}

// RemoveRange removes the characters in [start, end). The caller
// orders the bounds; an inverted or out-of-range span does nothing.
func (b *Buffer) RemoveRange(start, end int) {
	if start < 0 || start > end || end > b.rope.Len() {
		return
	}
	b.rope = b.rope.Delete(start, end)
}

// Snapshot returns the current content. It is O(1) and unaffected by
// later edits.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{rope: b.rope}
}

// Restore replaces the content with a previously taken snapshot.
func (b *Buffer) Restore(s Snapshot) {
	b.rope = s.rope
}

// WriteTo writes the content using the buffer's line ending.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	text := b.rope.String()
	if b.lineEnding != LineEndingLF {
		text = strings.ReplaceAll(text, "\n", b.lineEnding.Sequence())
	}
	n, err := io.WriteString(w, text)
	return int64(n), err
}
