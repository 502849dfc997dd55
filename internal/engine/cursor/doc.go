// Package cursor resolves cursor positions against a document.
//
// A Position is a (row, col) pair. The resolver converts positions to
// character offsets and back, and applies relative moves with clamping.
// Clamping never remembers a preferred column: moving from a long line
// through a short one leaves the cursor at the short line's end.
package cursor
