package app

// Shutdown stops the event loop and releases every component in reverse
// initialization order. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)

		// 1. Config watcher
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.WithComponent("config").Warn("closing watcher: %v", err)
			}
		}

		// 2. Scripts
		if app.scripts != nil {
			_ = app.scripts.Close()
		}

		// 3. Terminal
		app.mu.RLock()
		b := app.backend
		app.mu.RUnlock()
		if b != nil {
			b.Shutdown()
		}

		app.logger.WithFields(app.metrics.Snapshot().Fields()).Info("shutdown complete")
	})
}
