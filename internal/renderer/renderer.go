package renderer

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/alecthomas/chroma/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/rune/internal/editor"
	"github.com/dshills/rune/internal/input/mode"
	"github.com/dshills/rune/internal/input/vim"
	"github.com/dshills/rune/internal/renderer/backend"
)

// Options configures the renderer.
type Options struct {
	Theme string // "dark" or "light"
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{Theme: "dark"}
}

// Renderer paints editor views onto a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	theme   Theme

	// Lexer for the file last rendered.
	lexerFile string
	lexer     chroma.Lexer
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts Options) *Renderer {
	r := &Renderer{backend: b}
	r.theme, _ = ThemeByName(opts.Theme)
	return r
}

// SetTheme switches to the named theme and reports whether it was known.
func (r *Renderer) SetTheme(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ok bool
	r.theme, ok = ThemeByName(name)
	return ok
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.theme
}

// Render draws v and flushes the backend. The last row holds the status
// line; the rows above it hold text.
func (r *Renderer) Render(v editor.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}

	if v.TabSize < 1 {
		v.TabSize = editor.DefaultTabSize
	}

	r.backend.Clear()
	types := tokenTypes(r.lexerFor(v.FileName), v.Lines)
	textRows := height - 1
	for y := 0; y < textRows; y++ {
		if y < len(v.Lines) {
			r.drawLine(y, width, v.Scroll.Row+y, v.Lines[y], types[y], v)
		} else {
			r.fill(0, y, width, r.theme.Text)
		}
	}
	r.drawStatus(height-1, width, v)
	r.placeCursor(v, width, height)
	r.backend.Show()
}

// lexerFor returns the lexer for fileName, reusing the last one when the
// file has not changed.
func (r *Renderer) lexerFor(fileName string) chroma.Lexer {
	if r.lexer == nil || r.lexerFile != fileName {
		r.lexer = lexerFor(fileName)
		r.lexerFile = fileName
	}
	return r.lexer
}

func (r *Renderer) drawLine(y, width, docRow int, text string, types []chroma.TokenType, v editor.View) {
	x := 0
	if v.Gutter > 0 {
		x = r.drawString(0, y, width, fmt.Sprintf("%*d ", v.Gutter-1, docRow+1), r.theme.Gutter)
	}

	line := []rune(text)
	col := 0
	for i := v.Scroll.Col; i < len(line) && x < width; i++ {
		style := r.theme.Text
		if i < len(types) {
			style = r.theme.TokenStyle(types[i])
		}

		next := editor.Advance(col, line[i], v.TabSize)
		n := next - col
		if line[i] == '\t' {
			for ; n > 0 && x < width; n-- {
				r.backend.SetContent(x, y, ' ', style)
				x++
			}
		} else {
			if x+n > width {
				break
			}
			r.backend.SetContent(x, y, printable(line[i]), style)
			x += n
		}
		col = next
	}
	r.fill(x, y, width, r.theme.Text)
}

func (r *Renderer) drawStatus(y, width int, v editor.View) {
	if v.Mode == mode.Command {
		x := r.drawString(0, y, width, v.Command, r.theme.Command)
		r.fill(x, y, width, r.theme.Text)
		return
	}

	x := r.drawString(0, y, width, v.ModeBadge(), r.theme.Badge(v.Mode))
	x = r.drawString(x, y, width, v.StatusText(), r.theme.Status)
	r.fill(x, y, width, r.theme.Status)

	// The pending operator sits in the last column, as vim's showcmd does.
	if v.Pending != vim.OpNone && width > 0 {
		r.backend.SetContent(width-1, y, v.Pending.Key(), r.theme.Pending)
	}
}

func (r *Renderer) placeCursor(v editor.View, width, height int) {
	r.backend.SetCursorStyle(cursorStyle(v.Mode.CursorStyle()))

	var x, y int
	if v.Mode == mode.Command {
		x, y = runewidth.StringWidth(v.Command), height-1
	} else {
		y = v.Cursor.Row - v.Scroll.Row
		x = v.Gutter + r.columnOffset(v)
	}
	x = min(max(x, 0), width-1)
	y = min(max(y, 0), height-1)
	r.backend.ShowCursor(x, y)
}

// columnOffset is the display width between the horizontal scroll
// offset and the cursor column on the cursor's line.
func (r *Renderer) columnOffset(v editor.View) int {
	var line []rune
	if idx := v.Cursor.Row - v.Scroll.Row; idx >= 0 && idx < len(v.Lines) {
		line = []rune(v.Lines[idx])
	}

	col := 0
	for i := v.Scroll.Col; i < v.Cursor.Col; i++ {
		if i < len(line) {
			col = editor.Advance(col, line[i], v.TabSize)
		} else {
			col++
		}
	}
	return col
}

func printable(ch rune) rune {
	if !unicode.IsPrint(ch) {
		return '?'
	}
	return ch
}

// drawString draws s from x and returns the column after it.
func (r *Renderer) drawString(x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		ch = printable(ch)
		w := max(runewidth.RuneWidth(ch), 1)
		if x+w > width {
			break
		}
		r.backend.SetContent(x, y, ch, style)
		x += w
	}
	return x
}

func (r *Renderer) fill(x, y, width int, style tcell.Style) {
	for ; x < width; x++ {
		r.backend.SetContent(x, y, ' ', style)
	}
}

func cursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}
