package mode

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the current mode and notifies callbacks on transitions.
// It is owned by the editor and used from a single goroutine.
type Manager struct {
	current Mode

	callbacks []ChangeCallback
}

// NewManager creates a manager starting in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Switch changes the current mode. Switching to the current mode does
// nothing and notifies no one.
func (m *Manager) Switch(to Mode) {
	if to == m.current {
		return
	}
	from := m.current
	m.current = to

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(cb ChangeCallback) func() {
	m.callbacks = append(m.callbacks, cb)
	index := len(m.callbacks) - 1

	return func() {
		// Set to nil so later indices stay valid.
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
