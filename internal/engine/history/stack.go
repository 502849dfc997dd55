package history

import (
	"errors"
	"sync"
)

// DefaultMaxEntries is the undo depth used by the editor.
const DefaultMaxEntries = 50

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// History manages undo/redo stacks of document states.
type History[T any] struct {
	mu sync.Mutex

	undoStack []T
	redoStack []T

	maxEntries int
}

// New creates a history that keeps at most maxEntries undo states.
// A non-positive maxEntries selects DefaultMaxEntries.
func New[T any](maxEntries int) *History[T] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History[T]{maxEntries: maxEntries}
}

// Snapshot records state as the newest undo entry and clears the redo
// stack. The oldest entry is dropped once the limit is exceeded.
func (h *History[T]) Snapshot(state T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append(h.undoStack, state)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		clear(h.undoStack[:excess])
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo pops the newest undo state and pushes current onto the redo
// stack. The caller restores the returned state.
func (h *History[T]) Undo(current T) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	if len(h.undoStack) == 0 {
		return zero, ErrNothingToUndo
	}

	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return e, nil
}

// Redo pops the newest redo state and pushes current onto the undo
// stack. The caller restores the returned state.
func (h *History[T]) Redo(current T) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	if len(h.redoStack) == 0 {
		return zero, ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return e, nil
}

// Clear empties both stacks.
func (h *History[T]) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
}

// UndoDepth returns the number of undo entries.
func (h *History[T]) UndoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoDepth returns the number of redo entries.
func (h *History[T]) RedoDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}
