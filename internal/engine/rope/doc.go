// Package rope provides an immutable rope for editor text storage.
//
// The rope is a B+ tree whose leaves hold bounded text chunks and whose
// internal nodes cache a summary of their subtree: byte count, character
// (rune) count and newline count. Every position in the public API is a
// character offset, so callers never deal with UTF-8 byte arithmetic.
//
// Key properties:
//   - O(log n) insert, delete, slice and line/character conversions
//   - Operations return new ropes; the receiver is never modified
//   - Copying a Rope value is O(1), which makes whole-document snapshots cheap
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")        // "hello, world"
//	r = r.Delete(0, 7)          // "world"
//	line := r.CharToLine(3)     // 0
package rope
