// Package app provides the main application structure and coordination
// for the rune editor. It wires the editor, configuration, scripting and
// renderer together and runs the event loop.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/rune/internal/config"
	"github.com/dshills/rune/internal/editor"
	"github.com/dshills/rune/internal/logging"
	"github.com/dshills/rune/internal/renderer"
	"github.com/dshills/rune/internal/renderer/backend"
	"github.com/dshills/rune/internal/script"
	"github.com/dshills/rune/internal/vfs"
)

// Application is the central coordinator for all rune components.
// It manages component lifecycles, wiring, and the main event loop.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	logger  *logging.Logger
	session string
	fs      vfs.FS
	metrics *Metrics

	// Configuration
	config     config.Config
	configPath string
	watcher    *config.Watcher

	// Editor components
	editor   *editor.Editor
	scripts  *script.Engine
	renderer *renderer.Renderer
	backend  backend.Backend

	// State
	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	// Defaults to config.DefaultPath.
	ConfigPath string

	// InitialFile is opened at startup. A path that does not exist
	// becomes the file name of a new document.
	InitialFile string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput receives log lines. Nil discards them.
	LogOutput io.Writer

	// FS is the file system for documents, config and scripts.
	// Defaults to the OS file system.
	FS vfs.FS

	// NoWatch disables config reloading regardless of the watch setting.
	NoWatch bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config.Clone()
}

// ConfigPath returns the path the configuration was loaded from.
func (app *Application) ConfigPath() string {
	return app.configPath
}

// Renderer returns the renderer (nil until Run).
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Scripts returns the script engine.
func (app *Application) Scripts() *script.Engine {
	return app.scripts
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// Session returns the identifier attached to this run's log lines.
func (app *Application) Session() string {
	return app.session
}

// Metrics returns the event loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
