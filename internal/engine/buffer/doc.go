// Package buffer provides the text buffer the editor mutates.
//
// A Buffer wraps an immutable rope and exposes character-offset
// editing plus line/character conversions. Out-of-range edits are
// silent no-ops rather than errors, so callers can pass positions
// straight from the cursor without pre-validating them.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//	buf.InsertText(7, "Beautiful ") // "Hello, Beautiful World!"
//	buf.RemoveRange(0, 7)           // "Beautiful World!"
//
//	snap := buf.Snapshot() // O(1)
//	buf.InsertChar(0, '>')
//	buf.Restore(snap)      // back to "Beautiful World!"
//
// Line endings are normalized to "\n" on load. The style detected in
// the loaded text is remembered so Save can write it back unchanged.
package buffer
