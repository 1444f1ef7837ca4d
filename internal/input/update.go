package input

import (
	"time"

	"github.com/dshills/inputstorm/internal/input/history"
)

// Update advances every registered action by one frame. dt is the frame
// delta in seconds.
//
// Pipeline order: pre-update hooks, binding resolution, state
// advancement, masked intensities, history and combo recording, trigger
// sends, metrics, post-update hooks. States advance on raw binding
// activity; enablement only masks what the frame reports.
func (m *Manager) Update(dt float64) {
	start := time.Now()

	for _, h := range m.hooks {
		safePreUpdate(h, dt)
	}

	var triggered []string
	var pressedNow []string

	for _, a := range m.registry.All() {
		active := m.resolveActive(a)
		next := nextState(m.states[a.ID], active)
		m.states[a.ID] = next

		enabled := m.isEnabled(a)

		var value float64
		if enabled {
			value = m.resolveValue(a, next)
		}
		m.intensity[a.ID] = value

		if value != 0.0 {
			m.record(history.NewActionTriggered(a.ID, value))
			triggered = append(triggered, a.ID)
		}

		if enabled && next == StatePressed {
			pressedNow = append(pressedNow, a.ID)
		}
	}

	if m.config.DetectCombos && len(pressedNow) >= 2 {
		m.record(history.NewInputCombo(pressedNow, durationFromSeconds(dt)))
		m.metrics.RecordCombo()
	}

	for _, id := range pressedNow {
		m.sendTrigger(history.NewActionTriggered(id, m.intensity[id]))
	}

	m.metrics.RecordActionsTriggered(len(triggered))
	m.metrics.RecordUpdate(time.Since(start))

	for _, h := range m.hooks {
		safePostUpdate(h, dt, triggered)
	}
}

// sendTrigger performs a non-blocking send with overflow protection.
func (m *Manager) sendTrigger(e history.Event) {
	select {
	case m.triggers <- e:
	default:
		// Channel full - drop oldest and try again
		select {
		case <-m.triggers:
			m.metrics.RecordTriggerDrop()
		default:
		}
		select {
		case m.triggers <- e:
		default:
			m.metrics.RecordTriggerDrop()
		}
	}
}

// durationFromSeconds converts a frame delta to a time.Duration.
func durationFromSeconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}
