package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/rune/internal/logging"
	"github.com/dshills/rune/internal/vfs"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading.
const DefaultDebounce = 100 * time.Millisecond

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatcherFS sets the file system used to read the reloaded file.
func WithWatcherFS(fsys vfs.FS) WatcherOption {
	return func(w *Watcher) {
		if fsys != nil {
			w.fs = fsys
		}
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(l *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l.WithComponent("config")
		}
	}
}

// Watcher reloads a config file when it changes and delivers the result
// on Updates. The parent directory is watched so editors that replace
// the file by rename are seen.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	path     string
	fs       vfs.FS
	debounce time.Duration
	logger   *logging.Logger

	updates chan Config
	errors  chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher starts watching the config file at path.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		fs:       vfs.NewOSFS(),
		debounce: DefaultDebounce,
		logger:   logging.Discard(),
		updates:  make(chan Config, 1),
		errors:   make(chan error, 8),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	w.logger.WithField("path", absPath).Debug("watching config")
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers each successfully reloaded config. Only the latest
// undelivered config is kept.
func (w *Watcher) Updates() <-chan Config {
	return w.updates
}

// Errors delivers reload and watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Later calls return ErrWatcherClosed.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.closedWg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)

		case <-timerC:
			timerC = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	// A rename-based save removes the file before recreating it.
	if !w.fs.Exists(w.path) {
		w.logger.WithField("path", w.path).Debug("reload skipped: file missing")
		return
	}

	cfg, err := Load(w.fs, w.path)
	if err != nil {
		w.sendError(err)
		var perr *ParseError
		if errors.As(err, &perr) {
			w.logger.Warn("reload skipped: %v", err)
			return
		}
	}

	// Keep only the newest config.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.WithField("path", w.path).Info("config reloaded")
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}
