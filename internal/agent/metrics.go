package agent

import (
	"sync/atomic"
	"time"
)

// Metrics tracks interpreter statistics using atomic operations for thread-safety
type Metrics struct {
	Runs       atomic.Int64
	Requests   atomic.Int64
	ToolCalls  atomic.Int64
	Rejections atomic.Int64
	Failures   atomic.Int64
	StartTime  time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Runs       int64     `json:"runs"`
	Requests   int64     `json:"requests"`
	ToolCalls  int64     `json:"tool_calls"`
	Rejections int64     `json:"rejections"`
	Failures   int64     `json:"failures"`
	StartTime  time.Time `json:"start_time"`
	Uptime     string    `json:"uptime"`
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Runs:       m.Runs.Load(),
		Requests:   m.Requests.Load(),
		ToolCalls:  m.ToolCalls.Load(),
		Rejections: m.Rejections.Load(),
		Failures:   m.Failures.Load(),
		StartTime:  m.StartTime,
		Uptime:     time.Since(m.StartTime).Round(time.Second).String(),
	}
}
