package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/dshills/rune/internal/config"
	"github.com/dshills/rune/internal/editor"
	"github.com/dshills/rune/internal/logging"
	"github.com/dshills/rune/internal/script"
	"github.com/dshills/rune/internal/vfs"
)

// bootstrap initializes all components in dependency order. Only an
// invalid log level is fatal; config, script and file failures are
// logged and startup continues with defaults.
func (app *Application) bootstrap() error {
	// 1. File system and logger
	app.fs = app.opts.FS
	if app.fs == nil {
		app.fs = vfs.NewOSFS()
	}
	if err := app.initLogger(); err != nil {
		return err
	}

	// 2. Config
	app.initConfig()

	// 3. Editor
	app.editor = editor.New(
		editor.WithFS(app.fs),
		editor.WithLogger(app.logger),
		editor.WithLineNumbers(app.config.ShowLineNumbers),
		editor.WithTabSize(app.config.TabSize),
	)

	// 4. Scripts
	app.initScripts()

	// 5. Initial file
	app.openInitialFile()

	// 6. Config watcher
	app.initWatcher()

	return nil
}

func (app *Application) initLogger() error {
	level := logging.LevelInfo
	if app.opts.LogLevel != "" {
		parsed, err := logging.ParseLevel(app.opts.LogLevel)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		level = parsed
	}

	app.session = uuid.NewString()
	app.logger = logging.New(logging.Config{
		Level:  level,
		Output: app.opts.LogOutput,
		Prefix: "rune",
	}).WithField("session", app.session)
	return nil
}

func (app *Application) initConfig() {
	app.configPath = app.opts.ConfigPath
	if app.configPath == "" {
		app.configPath = config.DefaultPath
	}

	cfg, err := config.Load(app.fs, app.configPath)
	if err != nil {
		app.logger.WithComponent("config").Warn("%v", err)
	}
	app.config = cfg

	if app.opts.LogLevel == "" {
		app.logger.SetLevel(cfg.Level())
	}
	app.logger.WithFields(map[string]any{
		"component": "config",
		"path":      app.configPath,
		"theme":     cfg.Theme,
	}).Debug("config loaded")
}

func (app *Application) initScripts() {
	app.scripts = script.New(app.editor,
		script.WithLogger(app.logger),
		script.WithFS(app.fs),
	)
	app.editor.OnModeChange(app.scripts.NotifyModeChange)

	// RunFiles logs each failure itself.
	_ = app.scripts.RunFiles(context.Background(), app.config.ResolveScripts(app.configPath))
}

func (app *Application) openInitialFile() {
	path := app.opts.InitialFile
	if path == "" {
		return
	}

	if !app.fs.Exists(path) {
		app.editor.SetFilePath(path)
		app.logger.WithField("path", path).Info("new file")
		return
	}
	if err := app.editor.Open(path); err != nil {
		app.editor.SetStatus("Error opening: " + err.Error())
	}
}

func (app *Application) initWatcher() {
	if !app.config.Watch || app.opts.NoWatch {
		return
	}

	w, err := config.NewWatcher(app.configPath,
		config.WithWatcherFS(app.fs),
		config.WithWatcherLogger(app.logger),
	)
	if err != nil {
		app.logger.WithComponent("config").Warn("config watcher disabled: %v", err)
		return
	}
	app.watcher = w
}
