package editor

import (
	"strings"

	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/input/key"
	"github.com/dshills/rune/internal/input/mode"
)

// handleCommand edits the command line and reports whether a command
// was committed.
func (e *Editor) handleCommand(ev key.Event) bool {
	switch ev.Key {
	case key.KeyEscape:
		e.leaveCommand()
	case key.KeyEnter:
		e.execute(e.command)
		e.leaveCommand()
		return true
	case key.KeyBackspace:
		r := []rune(e.command)
		if len(r) > 1 {
			e.command = string(r[:len(r)-1])
		} else {
			e.leaveCommand()
		}
	case key.KeyRune:
		if ev.IsText() && ev.Rune != '\n' {
			e.command += string(ev.Rune)
		}
	}
	return false
}

func (e *Editor) leaveCommand() {
	e.command = ""
	e.modes.Switch(mode.Normal)
}

// execute runs a committed command line.
func (e *Editor) execute(line string) {
	switch {
	case strings.HasPrefix(line, ":"):
		e.runColon(line[1:])
	case strings.HasPrefix(line, "/"):
		if off, ok := e.search.SetQueryAndSearchForward(e.buf, e.offset(), line[1:]); ok {
			e.cursor = cursor.FromOffset(e.buf, off)
		}
	}
}

func (e *Editor) runColon(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := fields[0]
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), name))
	e.logger.Debug("command %q arg %q", name, arg)

	switch name {
	case "q":
		e.quit = true
	case "w":
		_ = e.Save(arg)
	case "wq":
		_ = e.Save("")
		e.quit = true
	case "e":
		if arg != "" {
			_ = e.Open(arg)
		}
	}
}
