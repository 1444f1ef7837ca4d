package input

import (
	"sync"
	"sync/atomic"
	"time"
)

// latencyWindow is the number of update-latency samples retained.
const latencyWindow = 128

// Metrics tracks manager throughput and update latency.
type Metrics struct {
	// Counters
	updatesTotal      atomic.Uint64
	deviceEventsTotal atomic.Uint64
	actionsTriggered  atomic.Uint64
	combosTotal       atomic.Uint64
	contextPushes     atomic.Uint64
	contextPops       atomic.Uint64
	historyTrims      atomic.Uint64
	triggerDrops      atomic.Uint64

	// Latency tracking
	mu         sync.RWMutex
	latencies  []time.Duration
	latencyIdx int

	// Peak latency (all time)
	peakLatency atomic.Int64

	// Start time for uptime calculation
	startTime time.Time

	// Enable flag
	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		latencies: make([]time.Duration, latencyWindow),
		startTime: time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordUpdate records one manager update with its processing time.
func (m *Metrics) RecordUpdate(latency time.Duration) {
	if !m.enabled.Load() {
		return
	}

	m.updatesTotal.Add(1)

	// Update peak latency
	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	// Store in circular buffer
	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % latencyWindow
	m.mu.Unlock()
}

// RecordDeviceEvent records one raw input write reaching the manager.
func (m *Metrics) RecordDeviceEvent() {
	if !m.enabled.Load() {
		return
	}
	m.deviceEventsTotal.Add(1)
}

// RecordActionsTriggered records the actions with nonzero intensity
// observed during one update.
func (m *Metrics) RecordActionsTriggered(n int) {
	if !m.enabled.Load() || n <= 0 {
		return
	}
	m.actionsTriggered.Add(uint64(n))
}

// RecordCombo records a detected simultaneous-press combo.
func (m *Metrics) RecordCombo() {
	if !m.enabled.Load() {
		return
	}
	m.combosTotal.Add(1)
}

// RecordContextPush records a context stack push.
func (m *Metrics) RecordContextPush() {
	if !m.enabled.Load() {
		return
	}
	m.contextPushes.Add(1)
}

// RecordContextPop records a context stack pop.
func (m *Metrics) RecordContextPop() {
	if !m.enabled.Load() {
		return
	}
	m.contextPops.Add(1)
}

// RecordHistoryTrim records an event discarded by the history ring.
func (m *Metrics) RecordHistoryTrim() {
	if !m.enabled.Load() {
		return
	}
	m.historyTrims.Add(1)
}

// RecordTriggerDrop records a trigger event dropped on channel overflow.
func (m *Metrics) RecordTriggerDrop() {
	if !m.enabled.Load() {
		return
	}
	m.triggerDrops.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	// Counters
	UpdatesTotal      uint64
	DeviceEventsTotal uint64
	ActionsTriggered  uint64
	CombosTotal       uint64
	ContextPushes     uint64
	ContextPops       uint64
	HistoryTrims      uint64
	TriggerDrops      uint64

	// Latency stats over the sample window
	AvgUpdateLatency  time.Duration
	MaxUpdateLatency  time.Duration
	PeakUpdateLatency time.Duration

	// Rates
	UpdatesPerSecond float64

	// Uptime
	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	latencies := make([]time.Duration, len(m.latencies))
	copy(latencies, m.latencies)
	m.mu.RUnlock()

	updates := m.updatesTotal.Load()
	uptime := time.Since(m.startTime)

	snap := MetricsSnapshot{
		UpdatesTotal:      updates,
		DeviceEventsTotal: m.deviceEventsTotal.Load(),
		ActionsTriggered:  m.actionsTriggered.Load(),
		CombosTotal:       m.combosTotal.Load(),
		ContextPushes:     m.contextPushes.Load(),
		ContextPops:       m.contextPops.Load(),
		HistoryTrims:      m.historyTrims.Load(),
		TriggerDrops:      m.triggerDrops.Load(),
		PeakUpdateLatency: time.Duration(m.peakLatency.Load()),
		Uptime:            uptime,
	}

	if uptime > 0 {
		snap.UpdatesPerSecond = float64(updates) / uptime.Seconds()
	}

	snap.AvgUpdateLatency, snap.MaxUpdateLatency = latencyStats(latencies)

	return snap
}

// latencyStats computes average and max over the recorded samples.
func latencyStats(latencies []time.Duration) (avg, maxLat time.Duration) {
	var sum time.Duration
	var count int
	for _, l := range latencies {
		if l <= 0 {
			continue
		}
		sum += l
		count++
		if l > maxLat {
			maxLat = l
		}
	}
	if count == 0 {
		return 0, 0
	}
	return sum / time.Duration(count), maxLat
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.updatesTotal.Store(0)
	m.deviceEventsTotal.Store(0)
	m.actionsTriggered.Store(0)
	m.combosTotal.Store(0)
	m.contextPushes.Store(0)
	m.contextPops.Store(0)
	m.historyTrims.Store(0)
	m.triggerDrops.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, latencyWindow)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}

// UpdatesTotal returns the total number of manager updates.
func (m *Metrics) UpdatesTotal() uint64 {
	return m.updatesTotal.Load()
}

// TriggerDrops returns the total number of dropped trigger events.
func (m *Metrics) TriggerDrops() uint64 {
	return m.triggerDrops.Load()
}

// Uptime returns the elapsed time since creation or the last Reset.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
