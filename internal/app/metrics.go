package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts event loop activity.
type Metrics struct {
	frameCount    atomic.Uint64
	renderTotalNs atomic.Int64

	keyCount    atomic.Uint64
	resizeCount atomic.Uint64
	reloadCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRender records one rendered frame.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.frameCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordKey records one handled key event.
func (m *Metrics) RecordKey() {
	m.keyCount.Add(1)
}

// RecordResize records one handled resize event.
func (m *Metrics) RecordResize() {
	m.resizeCount.Add(1)
}

// RecordReload records one applied config reload.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames    uint64
	AvgRender time.Duration
	Keys      uint64
	Resizes   uint64
	Reloads   uint64
	Uptime    time.Duration
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()
	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(m.renderTotalNs.Load() / int64(frames))
	}
	return MetricsSnapshot{
		Frames:    frames,
		AvgRender: avg,
		Keys:      m.keyCount.Load(),
		Resizes:   m.resizeCount.Load(),
		Reloads:   m.reloadCount.Load(),
		Uptime:    time.Since(m.startTime),
	}
}

// Fields returns the snapshot as logger fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"frames":     s.Frames,
		"avg_render": s.AvgRender,
		"keys":       s.Keys,
		"resizes":    s.Resizes,
		"reloads":    s.Reloads,
		"uptime":     s.Uptime.Round(time.Millisecond),
	}
}
