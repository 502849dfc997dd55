package history

import (
	"errors"
	"testing"

	"github.com/dshills/rune/internal/engine/buffer"
)

func TestHistorySnapshotAndUndo(t *testing.T) {
	buf := buffer.NewBufferFromString("hello")
	h := New[buffer.Snapshot](DefaultMaxEntries)

	h.Snapshot(buf.Snapshot())
	buf.InsertText(5, " world")

	prev, err := h.Undo(buf.Snapshot())
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	buf.Restore(prev)

	if buf.Text() != "hello" {
		t.Errorf("after undo: %q, want %q", buf.Text(), "hello")
	}
	if h.UndoDepth() != 0 || h.RedoDepth() != 1 {
		t.Errorf("depths = %d/%d, want 0/1", h.UndoDepth(), h.RedoDepth())
	}
}

func TestHistoryRedo(t *testing.T) {
	buf := buffer.NewBufferFromString("a")
	h := New[buffer.Snapshot](0)

	h.Snapshot(buf.Snapshot())
	buf.InsertChar(1, 'b')

	prev, _ := h.Undo(buf.Snapshot())
	buf.Restore(prev)

	next, err := h.Redo(buf.Snapshot())
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	buf.Restore(next)

	if buf.Text() != "ab" {
		t.Errorf("after redo: %q, want %q", buf.Text(), "ab")
	}
	if h.UndoDepth() != 1 || h.RedoDepth() != 0 {
		t.Errorf("depths = %d/%d, want 1/0", h.UndoDepth(), h.RedoDepth())
	}
}

func TestHistoryRedoClearedOnSnapshot(t *testing.T) {
	h := New[string](10)
	h.Snapshot("one")
	if _, err := h.Undo("two"); err != nil {
		t.Fatal(err)
	}
	if h.RedoDepth() != 1 {
		t.Fatal("expected redo to be available")
	}

	h.Snapshot("three")
	if h.RedoDepth() != 0 {
		t.Error("snapshot should clear redo")
	}
}

func TestHistoryMaxEntries(t *testing.T) {
	h := New[int](DefaultMaxEntries)
	for i := 0; i < 60; i++ {
		h.Snapshot(i)
	}

	if h.UndoDepth() != DefaultMaxEntries {
		t.Fatalf("UndoDepth() = %d, want %d", h.UndoDepth(), DefaultMaxEntries)
	}

	// The ten oldest states were dropped.
	var last int
	for h.UndoDepth() > 0 {
		last, _ = h.Undo(0)
	}
	if last != 10 {
		t.Errorf("oldest remaining state = %d, want 10", last)
	}
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	h := New[string](DefaultMaxEntries)
	states := []string{"", "a", "ab", "abc"}
	for _, s := range states[:3] {
		h.Snapshot(s)
	}
	current := states[3]

	for i := 2; i >= 0; i-- {
		var err error
		current, err = h.Undo(current)
		if err != nil {
			t.Fatalf("Undo %d: %v", i, err)
		}
		if current != states[i] {
			t.Errorf("undo -> %q, want %q", current, states[i])
		}
	}
	for i := 1; i <= 3; i++ {
		var err error
		current, err = h.Redo(current)
		if err != nil {
			t.Fatalf("Redo %d: %v", i, err)
		}
		if current != states[i] {
			t.Errorf("redo -> %q, want %q", current, states[i])
		}
	}
}

func TestHistoryErrors(t *testing.T) {
	h := New[string](5)

	if _, err := h.Undo("x"); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on empty = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo("x"); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo on empty = %v, want ErrNothingToRedo", err)
	}
	if h.RedoDepth() != 0 || h.UndoDepth() != 0 {
		t.Error("failed undo/redo must not change the stacks")
	}
}

func TestHistoryClear(t *testing.T) {
	h := New[string](5)
	h.Snapshot("a")
	h.Snapshot("b")
	_, _ = h.Undo("c")

	h.Clear()
	if h.UndoDepth() != 0 || h.RedoDepth() != 0 {
		t.Error("Clear should empty both stacks")
	}
}

func TestHistoryNonPositiveLimit(t *testing.T) {
	h := New[int](-1)
	for i := 0; i < DefaultMaxEntries+5; i++ {
		h.Snapshot(i)
	}
	if h.UndoDepth() != DefaultMaxEntries {
		t.Errorf("UndoDepth() = %d, want %d", h.UndoDepth(), DefaultMaxEntries)
	}
}
