// Package history provides bounded snapshot undo/redo.
//
// Each entry is a full copy of the document state taken before an edit.
// Undo swaps the current state with the newest undo entry and parks the
// current state on the redo stack; Redo does the reverse. Taking a new
// snapshot clears the redo stack.
//
//	h := history.New[buffer.Snapshot](history.DefaultMaxEntries)
//	h.Snapshot(buf.Snapshot()) // before editing
//	// ... edit ...
//	if prev, err := h.Undo(buf.Snapshot()); err == nil {
//	    buf.Restore(prev)
//	}
//
// With an immutable state type (such as a rope snapshot) every entry is
// an O(1) value copy.
package history
