package app

import (
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	snap := m.Snapshot()

	if snap.Frames != 0 || snap.Keys != 0 || snap.Resizes != 0 || snap.Reloads != 0 {
		t.Errorf("new metrics not zero: %+v", snap)
	}
	if snap.AvgRender != 0 {
		t.Errorf("AvgRender = %v, want 0", snap.AvgRender)
	}
}

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics()
	m.RecordRender(10 * time.Millisecond)
	m.RecordRender(20 * time.Millisecond)
	m.RecordKey()
	m.RecordKey()
	m.RecordKey()
	m.RecordResize()
	m.RecordReload()

	snap := m.Snapshot()
	if snap.Frames != 2 {
		t.Errorf("Frames = %d, want 2", snap.Frames)
	}
	if snap.AvgRender != 15*time.Millisecond {
		t.Errorf("AvgRender = %v, want 15ms", snap.AvgRender)
	}
	if snap.Keys != 3 || snap.Resizes != 1 || snap.Reloads != 1 {
		t.Errorf("counts = %+v", snap)
	}
}

func TestMetricsSnapshot_Fields(t *testing.T) {
	m := NewMetrics()
	m.RecordKey()

	fields := m.Snapshot().Fields()
	for _, k := range []string{"frames", "avg_render", "keys", "resizes", "reloads", "uptime"} {
		if _, ok := fields[k]; !ok {
			t.Errorf("missing field %q", k)
		}
	}
	if fields["keys"] != uint64(1) {
		t.Errorf("keys = %v", fields["keys"])
	}
}
