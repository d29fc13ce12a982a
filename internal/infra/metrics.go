package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Counters are updated once per scenario, never inside a timed loop, so
// recording cost cannot skew the measurements they describe.
type Metrics struct {
	scenariosRun        atomic.Uint64
	comparisonsTimed    atomic.Uint64
	correctnessFailures atomic.Uint64

	registrySize atomic.Int64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordScenario records one completed scenario and the number of
// comparisons its timed loops performed across both paths.
func (m *Metrics) RecordScenario(comparisons uint64) {
	m.scenariosRun.Add(1)
	m.comparisonsTimed.Add(comparisons)
}

// RecordCorrectnessFailure records a match-count mismatch.
func (m *Metrics) RecordCorrectnessFailure() {
	m.correctnessFailures.Add(1)
}

// SetRegistrySize records the current distinct-symbol count.
func (m *Metrics) SetRegistrySize(n int64) {
	m.registrySize.Store(n)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	ScenariosRun        uint64
	ComparisonsTimed    uint64
	CorrectnessFailures uint64
	RegistrySize        int64
	Timestamp           time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ScenariosRun:        m.scenariosRun.Load(),
		ComparisonsTimed:    m.comparisonsTimed.Load(),
		CorrectnessFailures: m.correctnessFailures.Load(),
		RegistrySize:        m.registrySize.Load(),
		Timestamp:           time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.scenariosRun.Store(0)
	m.comparisonsTimed.Store(0)
	m.correctnessFailures.Store(0)
	m.registrySize.Store(0)
}
