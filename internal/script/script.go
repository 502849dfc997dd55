// Package script runs user Lua scripts against the editor.
//
// Scripts execute in a restricted gopher-lua state: only the base, table,
// string and math libraries are opened and the file-loading builtins are
// removed. Scripts see a small API:
//
//	log(msg)                 write msg to the editor log
//	editor.status([msg])     get or set the status message
//	editor.mode()            current mode name ("normal", "insert", ...)
//	editor.cursor()          row, col (1-based)
//	editor.line(n)           text of line n (1-based), nil when out of range
//	editor.line_count()      number of lines
//	editor.file()            associated file path, or nil
//
// A script that defines a global function on_mode_change(from, to) has
// it called after every mode transition.
//
// An Engine is not safe for concurrent use; it runs on the goroutine
// that owns the editor.
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/rune/internal/engine/cursor"
	"github.com/dshills/rune/internal/input/mode"
	"github.com/dshills/rune/internal/logging"
	"github.com/dshills/rune/internal/vfs"
)

// DefaultTimeout bounds a single script execution or hook call.
const DefaultTimeout = time.Second

// ModeChangeHook is the global function called on mode transitions.
const ModeChangeHook = "on_mode_change"

// ErrClosed is returned by operations on a closed Engine.
var ErrClosed = errors.New("script engine closed")

// Host is the editor state visible to scripts.
type Host interface {
	Status() string
	SetStatus(msg string)
	Mode() mode.Mode
	Cursor() cursor.Position
	Line(row int) string
	LineCount() int
	FilePath() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger that receives log() output and errors.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l.WithComponent("script")
		}
	}
}

// WithFS sets the file system scripts are read from.
func WithFS(fsys vfs.FS) Option {
	return func(e *Engine) {
		if fsys != nil {
			e.fs = fsys
		}
	}
}

// WithTimeout sets the per-call execution limit.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// Engine owns a Lua state bound to a Host.
type Engine struct {
	mu sync.Mutex

	L       *lua.LState
	host    Host
	fs      vfs.FS
	logger  *logging.Logger
	timeout time.Duration

	closed bool
}

// New creates an engine bound to host.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		host:    host,
		fs:      vfs.NewOSFS(),
		logger:  logging.Discard(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(e.L)
	e.installAPI()
	return e
}

// openSafeLibraries opens only the libraries without file, process or
// module-loading access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// RunString executes Lua source. name labels error messages.
func (e *Engine) RunString(ctx context.Context, name, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	return e.exec(ctx, func() error {
		fn, err := e.L.Load(strings.NewReader(code), name)
		if err != nil {
			return err
		}
		e.L.Push(fn)
		return e.L.PCall(0, lua.MultRet, nil)
	})
}

// RunFile reads and executes the script at path.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script %s: %w", path, err)
	}
	if err := e.RunString(ctx, path, string(data)); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	e.logger.WithField("path", path).Debug("script loaded")
	return nil
}

// RunFiles executes each script in order. Failures are logged and do
// not stop later scripts; the joined errors are returned.
func (e *Engine) RunFiles(ctx context.Context, paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := e.RunFile(ctx, p); err != nil {
			e.logger.Warn("%v", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NotifyModeChange calls the on_mode_change hook if a script defined
// one. Errors are logged.
func (e *Engine) NotifyModeChange(from, to mode.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	fn, ok := e.L.GetGlobal(ModeChangeHook).(*lua.LFunction)
	if !ok {
		return
	}

	err := e.exec(context.Background(), func() error {
		return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true},
			lua.LString(from.Name()), lua.LString(to.Name()))
	})
	if err != nil {
		e.logger.Warn("%s: %v", ModeChangeHook, err)
	}
}

// Close releases the Lua state. It is safe to call more than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	return nil
}

// exec runs fn with the execution deadline applied and panics recovered.
func (e *Engine) exec(ctx context.Context, fn func() error) (err error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	top := e.L.GetTop()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		e.L.SetTop(top)
	}()
	return fn()
}
