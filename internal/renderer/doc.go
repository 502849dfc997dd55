// Package renderer paints editor views onto a terminal.
//
// A Renderer takes an editor.View snapshot and draws it to a
// backend.Backend: the visible text rows with an optional line-number
// gutter and tabs expanded to the editor's tab size, followed by a one-row
// status line. Cell widths come from go-runewidth.
//
// Text is highlighted with a chroma lexer picked by file name. Files no
// lexer claims get a small keyword-only lexer.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	_ = term.Init()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(ed.Snapshot())
package renderer
