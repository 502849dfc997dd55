package vim

import (
	"testing"

	"github.com/dshills/rune/internal/engine/buffer"
)

func TestOperatorForKey(t *testing.T) {
	tests := []struct {
		key  rune
		want Operator
		ok   bool
	}{
		{'d', OpDelete, true},
		{'y', OpYank, true},
		{'c', OpNone, false},
		{'x', OpNone, false},
	}

	for _, tt := range tests {
		got, ok := OperatorForKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("OperatorForKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
		if ok && got.Key() != tt.key {
			t.Errorf("%v.Key() = %q, want %q", got, got.Key(), tt.key)
		}
	}

	if !OpDelete.ChangesText() || OpYank.ChangesText() {
		t.Error("only delete changes text")
	}
}

func TestMotionForKey(t *testing.T) {
	keys := "wbhjkl0$"
	seen := make(map[Motion]bool)
	for _, r := range keys {
		m, ok := MotionForKey(r)
		if !ok {
			t.Errorf("MotionForKey(%q) not found", r)
			continue
		}
		if seen[m] {
			t.Errorf("motion %v bound twice", m)
		}
		seen[m] = true
	}

	for _, r := range "xeG/ " {
		if _, ok := MotionForKey(r); ok {
			t.Errorf("MotionForKey(%q) should not be a motion", r)
		}
	}
}

func TestMotionDelta(t *testing.T) {
	tests := []struct {
		motion Motion
		dr, dc int
		ok     bool
	}{
		{MotionLeft, 0, -1, true},
		{MotionRight, 0, 1, true},
		{MotionUp, -1, 0, true},
		{MotionDown, 1, 0, true},
		{MotionWordForward, 0, 0, false},
		{MotionLineEnd, 0, 0, false},
	}

	for _, tt := range tests {
		dr, dc, ok := tt.motion.Delta()
		if dr != tt.dr || dc != tt.dc || ok != tt.ok {
			t.Errorf("%v.Delta() = %d, %d, %v", tt.motion, dr, dc, ok)
		}
	}
}

func TestNextWordStart(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		want   int
	}{
		{"hello world", 0, 6},
		{"hello world", 3, 6},
		{"hello world", 5, 6},
		{"hello world", 6, 11},
		{"hello   world", 0, 8},
		{"a\nb", 0, 2},
		{"foo.bar baz", 0, 8},
		{"", 0, 0},
		{"abc", 3, 3},
	}

	for _, tt := range tests {
		doc := buffer.NewBufferFromString(tt.text)
		if got := NextWordStart(doc, tt.offset); got != tt.want {
			t.Errorf("NextWordStart(%q, %d) = %d, want %d", tt.text, tt.offset, got, tt.want)
		}
	}
}

func TestPrevWordStart(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		want   int
	}{
		{"hello world", 6, 0},
		{"hello world", 8, 6},
		{"hello world", 11, 6},
		{"hello   world", 8, 0},
		{"a\nb", 2, 0},
		{"abc", 0, 0},
		{"  abc", 1, 0},
	}

	for _, tt := range tests {
		doc := buffer.NewBufferFromString(tt.text)
		if got := PrevWordStart(doc, tt.offset); got != tt.want {
			t.Errorf("PrevWordStart(%q, %d) = %d, want %d", tt.text, tt.offset, got, tt.want)
		}
	}
}
