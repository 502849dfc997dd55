package rope

import "strings"

// Rope is an immutable rope. Operations return new Rope values; the
// original is never modified, so a Rope can be kept as a snapshot.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var nodes []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leaf := make([]Chunk, end-i)
		copy(leaf, chunks[i:end])
		nodes = append(nodes, newLeafNodeWithChunks(leaf))
	}
	return Rope{root: buildNodeFromChildren(nodes)}
}

// Len returns the number of characters (Unicode scalar values).
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// ByteLen returns the UTF-8 encoded length.
func (r Rope) ByteLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{}
	}
	return r.root.summary
}

// String returns the full text.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.ByteLen())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the character range [start, end).
// The range is clamped to the rope.
func (r Rope) Slice(start, end int) string {
	start = max(start, 0)
	end = min(end, r.Len())
	if r.root == nil || start >= end {
		return ""
	}
	var sb strings.Builder
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// CharAt returns the character at the given offset.
// Returns 0 and false if offset is out of range.
func (r Rope) CharAt(offset int) (rune, bool) {
	if r.root == nil || offset < 0 || offset >= r.Len() {
		return 0, false
	}
	return r.root.charAt(offset)
}

// Insert inserts text at a character offset. Offsets past the end append.
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil || r.IsEmpty() {
		return FromString(text)
	}
	if offset <= 0 {
		return FromString(text).Concat(r)
	}
	if offset >= r.Len() {
		return r.Concat(FromString(text))
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes the characters in [start, end).
// The range is clamped; an empty or inverted range returns r unchanged.
func (r Rope) Delete(start, end int) Rope {
	start = max(start, 0)
	end = min(end, r.Len())
	if r.root == nil || start >= end {
		return r
	}

	if start == 0 && end == r.Len() {
		return New()
	}
	if start == 0 {
		_, right := r.Split(end)
		return right
	}
	if end == r.Len() {
		left, _ := r.Split(start)
		return left
	}

	left, rest := r.Split(start)
	_, right := rest.Split(end - start)
	return left.Concat(right)
}

// Split splits the rope at a character offset.
// The left rope holds [0, offset), the right [offset, end).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat concatenates two ropes.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.IsEmpty() {
		return other
	}
	if other.root == nil || other.IsEmpty() {
		return r
	}
	return Rope{root: concat(r.root, other.root)}
}

// LineToChar returns the character offset of the first character of line.
// Lines past the end map to Len().
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}
	return r.root.lineStart(line)
}

// CharToLine returns the line containing the character at offset.
// A newline belongs to the line it terminates. Offsets at or past the
// end map to the last line.
func (r Rope) CharToLine(offset int) int {
	if r.root == nil || offset <= 0 {
		return 0
	}
	if offset >= r.Len() {
		return r.LineCount() - 1
	}
	return r.root.lineOf(offset)
}

// LineText returns the text of a line without its trailing newline.
func (r Rope) LineText(line int) string {
	if line < 0 || line >= r.LineCount() {
		return ""
	}
	return r.Slice(r.LineToChar(line), r.lineEnd(line))
}

// LineLen returns the number of characters in a line, excluding its
// trailing newline.
func (r Rope) LineLen(line int) int {
	if line < 0 || line >= r.LineCount() {
		return 0
	}
	return r.lineEnd(line) - r.LineToChar(line)
}

func (r Rope) lineEnd(line int) int {
	if line >= r.LineCount()-1 {
		return r.Len()
	}
	return r.LineToChar(line+1) - 1
}

// Height returns the height of the tree. Useful for testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// Equals returns true if two ropes contain the same text.
func (r Rope) Equals(other Rope) bool {
	if r.root == other.root {
		return true
	}
	if r.Summary() != other.Summary() {
		return false
	}
	return r.String() == other.String()
}
