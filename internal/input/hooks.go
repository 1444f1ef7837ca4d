package input

// Hook observes manager updates. Hooks run on the frame goroutine in
// registration order.
type Hook interface {
	// PreUpdate is called before bindings are resolved.
	PreUpdate(dt float64)

	// PostUpdate is called after the frame completes. triggered holds
	// the ids of actions that reported nonzero intensity this update.
	PostUpdate(dt float64, triggered []string)
}

// AddHook registers an update hook.
func (m *Manager) AddHook(h Hook) {
	m.hooks = append(m.hooks, h)
}

// RemoveHook unregisters a previously added hook. Unknown hooks are
// ignored.
func (m *Manager) RemoveHook(h Hook) {
	for i, existing := range m.hooks {
		if existing == h {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return
		}
	}
}

// safePreUpdate calls PreUpdate with panic recovery.
func safePreUpdate(h Hook, dt float64) {
	defer func() {
		// Recover from panics to keep the frame loop running
		_ = recover()
	}()
	h.PreUpdate(dt)
}

// safePostUpdate calls PostUpdate with panic recovery.
func safePostUpdate(h Hook, dt float64, triggered []string) {
	defer func() {
		// Recover from panics to keep the frame loop running
		_ = recover()
	}()
	h.PostUpdate(dt, triggered)
}
