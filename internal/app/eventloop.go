package app

import (
	"time"

	"github.com/dshills/rune/internal/config"
	"github.com/dshills/rune/internal/renderer"
	"github.com/dshills/rune/internal/renderer/backend"
)

// pollInterval bounds how long the loop waits for an event before
// rendering again.
const pollInterval = 50 * time.Millisecond

// Run initializes the backend and runs the event loop until the editor
// quits (ErrQuit), Shutdown is called (nil) or the backend fails.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	if b == nil {
		app.mu.Unlock()
		return ErrNoBackend
	}
	if err := b.Init(); err != nil {
		app.mu.Unlock()
		return &InitError{Component: "backend", Err: err}
	}
	app.renderer = renderer.New(b, renderer.Options{Theme: app.config.Theme})
	app.mu.Unlock()

	width, height := b.Size()
	app.editor.Resize(width, height)
	app.logger.WithFields(map[string]any{"width": width, "height": height}).Info("event loop started")

	return app.eventLoop(b)
}

// eventLoop renders, waits up to pollInterval for one event, handles it
// and repeats.
func (app *Application) eventLoop(b backend.Backend) error {
	var (
		updates <-chan config.Config
		errs    <-chan error
	)
	if app.watcher != nil {
		updates = app.watcher.Updates()
		errs = app.watcher.Errors()
	}

	timer := time.NewTimer(pollInterval)
	defer timer.Stop()

	events := b.Events()
	for {
		app.render()

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(pollInterval)

		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				select {
				case <-app.done:
					return nil
				default:
				}
				return NewOperationError("poll", "backend", ErrBackendClosed)
			}
			app.handleBackendEvent(ev)

		case cfg := <-updates:
			app.applyConfig(cfg)

		case err := <-errs:
			app.logger.WithComponent("config").Warn("reload: %v", err)

		case <-timer.C:
		}

		if app.editor.ShouldQuit() {
			app.logger.Info("quit requested")
			return ErrQuit
		}
	}
}

// handleBackendEvent processes a backend event.
func (app *Application) handleBackendEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventResize:
		app.editor.Resize(ev.Width, ev.Height)
		app.metrics.RecordResize()
	case backend.EventKey:
		app.editor.HandleKey(ev.Key)
		app.metrics.RecordKey()
	}
}

// render draws the current editor state.
func (app *Application) render() {
	app.mu.RLock()
	r := app.renderer
	app.mu.RUnlock()
	if r == nil {
		return
	}

	start := time.Now()
	r.Render(app.editor.Snapshot())
	app.metrics.RecordRender(time.Since(start))
}

// applyConfig makes a reloaded config take effect.
func (app *Application) applyConfig(cfg config.Config) {
	app.mu.Lock()
	old := app.config
	app.config = cfg
	r := app.renderer
	app.mu.Unlock()

	app.editor.SetLineNumbers(cfg.ShowLineNumbers)
	app.editor.SetTabSize(cfg.TabSize)
	if r != nil {
		r.SetTheme(cfg.Theme)
	}
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(cfg.Level())
	}
	if !old.Equal(cfg) {
		app.editor.SetStatus("Config reloaded")
	}
	app.metrics.RecordReload()
	app.logger.WithComponent("config").Debug("applied theme=%s tab_size=%d line_numbers=%t",
		cfg.Theme, cfg.TabSize, cfg.ShowLineNumbers)
}
