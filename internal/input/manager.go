package input

import (
	"github.com/dshills/inputstorm/internal/input/action"
	"github.com/dshills/inputstorm/internal/input/history"
	"github.com/dshills/inputstorm/internal/input/physical"
)

// Config configures the input manager.
type Config struct {
	// MaxHistory caps the retained event history.
	// Zero disables recording. Default: 1000
	MaxHistory int

	// DetectCombos records an InputCombo event whenever two or more
	// actions are pressed on the same update. Default: true
	DetectCombos bool

	// TriggerBuffer sizes the Triggers channel. Default: 64
	TriggerBuffer int

	// EnableMetrics enables counter and latency collection. Default: true
	EnableMetrics bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxHistory:    history.DefaultMaxSize,
		DetectCombos:  true,
		TriggerBuffer: 64,
		EnableMetrics: true,
	}
}

// Validate clamps out-of-range values to safe ones.
func (c *Config) Validate() {
	if c.MaxHistory < 0 {
		c.MaxHistory = 0
	}
	if c.TriggerBuffer < 0 {
		c.TriggerBuffer = 0
	}
}

// Manager is the central coordinator for action-based input. It owns the
// raw device state, resolves bindings into per-action states once per
// Update, and answers frame queries.
//
// The manager is single-owner: one goroutine drives Update and the
// queries. The registry and metrics carry their own synchronization so
// loaders and monitors can touch them from other goroutines.
type Manager struct {
	config   Config
	registry *action.Registry

	// Raw device state keyed by physical input.
	pressed map[physical.Input]bool
	values  map[physical.Input]float64

	// Per-action products of the last Update.
	states    map[string]ActionState
	intensity map[string]float64

	// Context stack, sorted ascending by priority.
	contexts []Context

	hist     *history.History
	hooks    []Hook
	metrics  *Metrics
	triggers chan history.Event
}

// New creates a manager with its own empty action registry.
func New(cfg Config) *Manager {
	return NewWithRegistry(cfg, action.NewRegistry())
}

// NewWithRegistry creates a manager around an existing registry so
// loaders and hot reload can re-register actions while the manager runs.
func NewWithRegistry(cfg Config, reg *action.Registry) *Manager {
	cfg.Validate()
	m := &Manager{
		config:    cfg,
		registry:  reg,
		pressed:   make(map[physical.Input]bool),
		values:    make(map[physical.Input]float64),
		states:    make(map[string]ActionState),
		intensity: make(map[string]float64),
		hist:      history.New(cfg.MaxHistory),
		metrics:   NewMetrics(),
		triggers:  make(chan history.Event, cfg.TriggerBuffer),
	}
	m.metrics.SetEnabled(cfg.EnableMetrics)
	return m
}

// Registry returns the action registry backing this manager.
func (m *Manager) Registry() *action.Registry {
	return m.registry
}

// RegisterAction adds or replaces an action by id.
func (m *Manager) RegisterAction(a action.Action) {
	m.registry.Register(a)
}

// RegisterActions adds or replaces a batch of actions. Later entries win
// on duplicate ids.
func (m *Manager) RegisterActions(actions ...action.Action) {
	m.registry.RegisterAll(actions...)
}

// SetInputState records the digital state of a physical input. The value
// store mirrors 1.0/0.0 so digital inputs can satisfy analog bindings.
func (m *Manager) SetInputState(in physical.Input, pressed bool) {
	m.pressed[in] = pressed
	if pressed {
		m.values[in] = 1.0
	} else {
		m.values[in] = 0.0
	}
	m.metrics.RecordDeviceEvent()
}

// SetInputValue records the analog value of a physical input. The
// digital state is left untouched; axes do not press keys.
func (m *Manager) SetInputValue(in physical.Input, v float64) {
	m.values[in] = v
	m.metrics.RecordDeviceEvent()
}

// InputState returns the digital state of a physical input. Inputs never
// written are released.
func (m *Manager) InputState(in physical.Input) bool {
	return m.pressed[in]
}

// InputValue returns the analog value of a physical input. Inputs never
// written are 0.0.
func (m *Manager) InputValue(in physical.Input) float64 {
	return m.values[in]
}

// Metrics returns the manager's metrics tracker.
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// Triggers returns the channel carrying a best-effort feed of
// ActionTriggered events for Pressed edges. When the buffer overflows the
// oldest event is dropped.
func (m *Manager) Triggers() <-chan history.Event {
	return m.triggers
}

// RecentEvents returns the n most recent history events, newest first.
func (m *Manager) RecentEvents(n int) []history.Event {
	return m.hist.Recent(n)
}

// ClearHistory discards all recorded events.
func (m *Manager) ClearHistory() {
	m.hist.Clear()
}

// record appends to history, counting ring evictions.
func (m *Manager) record(e history.Event) {
	if m.hist.Append(e) {
		m.metrics.RecordHistoryTrim()
	}
}
