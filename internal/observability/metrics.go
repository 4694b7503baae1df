package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics collects in-process counters for engine operations.
type Metrics struct {
	mu sync.Mutex

	// Counters
	requestTotal  atomic.Int64
	requestFailed atomic.Int64
	degraded      atomic.Int64

	// Per-operation metrics, keyed by operation name ("predict", "extract", ...).
	operations map[string]*OperationMetrics
	// Per expression kind resolution counts.
	kinds map[string]*atomic.Int64
}

// OperationMetrics represents metrics for a single operation.
type OperationMetrics struct {
	count         atomic.Int64
	totalDuration atomic.Int64 // microseconds
	errorCount    atomic.Int64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		operations: make(map[string]*OperationMetrics),
		kinds:      make(map[string]*atomic.Int64),
	}
}

var globalMetrics = NewMetrics()

// GlobalMetrics returns the process-wide metrics instance.
func GlobalMetrics() *Metrics {
	return globalMetrics
}

// RecordRequest records one call of op that took d.
func (m *Metrics) RecordRequest(op string, d time.Duration) {
	m.requestTotal.Add(1)
	om := m.operation(op)
	om.count.Add(1)
	om.totalDuration.Add(d.Microseconds())
}

// RecordFailure records a failed call of op.
func (m *Metrics) RecordFailure(op string) {
	m.requestFailed.Add(1)
	m.operation(op).errorCount.Add(1)
}

// RecordResolution records a resolved expression kind and whether it fell back to the context.
func (m *Metrics) RecordResolution(kind string, degraded bool) {
	if degraded {
		m.degraded.Add(1)
	}
	m.mu.Lock()
	c, ok := m.kinds[kind]
	if !ok {
		c = &atomic.Int64{}
		m.kinds[kind] = c
	}
	m.mu.Unlock()
	c.Add(1)
}

func (m *Metrics) operation(op string) *OperationMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	om, ok := m.operations[op]
	if !ok {
		om = &OperationMetrics{}
		m.operations[op] = om
	}
	return om
}

// Reset resets all metrics (useful for testing).
func (m *Metrics) Reset() {
	m.requestTotal.Store(0)
	m.requestFailed.Store(0)
	m.degraded.Store(0)

	m.mu.Lock()
	m.operations = make(map[string]*OperationMetrics)
	m.kinds = make(map[string]*atomic.Int64)
	m.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the counters.
func (m *Metrics) Snapshot() *MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	ops := make(map[string]OperationSnapshot, len(m.operations))
	for name, om := range m.operations {
		snap := OperationSnapshot{
			Count:      om.count.Load(),
			ErrorCount: om.errorCount.Load(),
		}
		if snap.Count > 0 {
			snap.AverageMicros = om.totalDuration.Load() / snap.Count
		}
		ops[name] = snap
	}
	kinds := make(map[string]int64, len(m.kinds))
	for k, c := range m.kinds {
		kinds[k] = c.Load()
	}

	return &MetricsSnapshot{
		RequestTotal:  m.requestTotal.Load(),
		RequestFailed: m.requestFailed.Load(),
		Degraded:      m.degraded.Load(),
		Operations:    ops,
		Kinds:         kinds,
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics.
type MetricsSnapshot struct {
	RequestTotal  int64                        `json:"request_total"`
	RequestFailed int64                        `json:"request_failed"`
	Degraded      int64                        `json:"degraded"`
	Operations    map[string]OperationSnapshot `json:"operations"`
	Kinds         map[string]int64             `json:"kinds"`
}

// OperationSnapshot represents metrics for a single operation.
type OperationSnapshot struct {
	Count         int64 `json:"count"`
	ErrorCount    int64 `json:"error_count"`
	AverageMicros int64 `json:"average_us"`
}
