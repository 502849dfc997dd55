// Package key defines key events and a parser for Vim-style key notation.
//
// An Event is either a rune key (KeyRune with Rune set) or a named key
// such as Escape or Enter, plus a set of modifiers. Backends convert their
// native events into this form so the editor never sees terminal details.
//
// Key notation:
//
//   - Plain characters: "a", "G", "$"
//   - Named keys: "<Esc>", "<CR>", "<BS>", "<Tab>", "<Space>", "<lt>"
//   - Modifiers: "<C-r>", "<A-x>", "<C-S-Left>"
//
// ParseSequence accepts a run of notation such as "dw" or "ihi<Esc>",
// which keeps key-driven tests short.
package key
