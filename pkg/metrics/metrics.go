// Package metrics provides performance tracking for terracell using
// Prometheus metrics. Collectors cover the hot paths of row
// processing: cells read, nulls encountered, encoding conversions and
// history writes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CellsProcessed tracks the total number of cells read or written.
	// Labels: type (int32/float32/float64), operation (scan/convert)
	CellsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terracell_cells_processed_total",
			Help: "Total number of cells processed",
		},
		[]string{"type", "operation"},
	)

	// NullCells tracks how many processed cells held the null sentinel.
	// Labels: type (int32/float32/float64)
	NullCells = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terracell_null_cells_total",
			Help: "Total number of null cells encountered",
		},
		[]string{"type"},
	)

	// RowLatency tracks per-row operation latency in nanoseconds.
	// Labels: operation (scan/convert)
	RowLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "terracell_row_latency_nanoseconds",
			Help: "Row operation latency in nanoseconds",
			Buckets: []float64{
				1000,  // 1μs - short rows
				10000, // 10μs
				1e5,   // 100μs
				1e6,   // 1ms - wide rows
				1e7,   // 10ms
				1e8,   // 100ms - whole grids
			},
		},
		[]string{"operation"},
	)

	// HistoryWrites tracks history records written.
	// Labels: status (success/failure)
	HistoryWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terracell_history_writes_total",
			Help: "Total number of history records written",
		},
		[]string{"status"},
	)
)

// Timer provides a simple timing mechanism for measuring operation
// durations. It captures the start time on creation and observes the
// elapsed time into RowLatency on stop.
type Timer struct {
	start     time.Time
	operation string
}

// NewTimer creates a new timer for the given operation and starts
// timing immediately.
func NewTimer(operation string) *Timer {
	return &Timer{
		start:     time.Now(),
		operation: operation,
	}
}

// Stop records the elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	RowLatency.WithLabelValues(t.operation).Observe(float64(elapsed.Nanoseconds()))
	return elapsed
}
