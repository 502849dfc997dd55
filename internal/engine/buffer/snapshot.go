package buffer

import "github.com/dshills/rune/internal/engine/rope"

// Snapshot is an immutable copy of a buffer's content.
// The zero value is an empty document.
type Snapshot struct {
	rope rope.Rope
}

// SnapshotFromString creates a snapshot holding s.
func SnapshotFromString(s string) Snapshot {
	return Snapshot{rope: rope.FromString(normalizeLineEndings(s))}
}

// Text returns the snapshot content.
func (s Snapshot) Text() string {
	return s.rope.String()
}

// Len returns the number of characters in the snapshot.
func (s Snapshot) Len() int {
	return s.rope.Len()
}

// LineCount returns the number of lines in the snapshot.
func (s Snapshot) LineCount() int {
	return s.rope.LineCount()
}

// Equals returns true if both snapshots hold the same text.
func (s Snapshot) Equals(other Snapshot) bool {
	return s.rope.Equals(other.rope)
}
