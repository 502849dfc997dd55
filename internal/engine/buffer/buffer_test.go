package buffer

import (
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.LineLen(0) != 0 {
		t.Errorf("expected empty first line, got %d", b.LineLen(0))
	}
}

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		ending LineEnding
	}{
		{"plain", "Hello, World!", "Hello, World!", LineEndingLF},
		{"lf", "a\nb\n", "a\nb\n", LineEndingLF},
		{"crlf", "a\r\nb\r\n", "a\nb\n", LineEndingCRLF},
		{"cr", "a\rb\r", "a\nb\n", LineEndingCR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			if b.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.text)
			}
			if b.LineEnding() != tt.ending {
				t.Errorf("LineEnding() = %v, want %v", b.LineEnding(), tt.ending)
			}
		})
	}
}

func TestInsertChar(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		ch     rune
		want   string
	}{
		{"start", "bc", 0, 'a', "abc"},
		{"end", "ab", 2, 'c', "abc"},
		{"past end is no-op", "ab", 3, 'c', "ab"},
		{"negative is no-op", "ab", -1, 'c', "ab"},
		{"newline", "ab", 1, '\n', "a\nb"},
		{"unicode", "ab", 1, '世', "a世b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			b.InsertChar(tt.offset, tt.ch)
			if b.Text() != tt.want {
				t.Errorf("got %q, want %q", b.Text(), tt.want)
			}
		})
	}
}

func TestDeleteChar(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		want   string
	}{
		{"first", "abc", 0, "bc"},
		{"last", "abc", 2, "ab"},
		{"at len is no-op", "abc", 3, "abc"},
		{"joins lines", "a\nb", 1, "ab"},
		{"unicode", "a世b", 1, "ab"},
		{"empty buffer", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			b.DeleteChar(tt.offset)
			if b.Text() != tt.want {
				t.Errorf("got %q, want %q", b.Text(), tt.want)
			}
		})
	}
}

func TestRemoveRange(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		start, end int
		want       string
	}{
		{"middle", "hello world", 5, 6, "helloworld"},
		{"all", "hello", 0, 5, ""},
		{"empty range", "hello", 2, 2, "hello"},
		{"inverted is no-op", "hello", 3, 1, "hello"},
		{"past end is no-op", "hello", 3, 6, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.input)
			b.RemoveRange(tt.start, tt.end)
			if b.Text() != tt.want {
				t.Errorf("got %q, want %q", b.Text(), tt.want)
			}
		})
	}
}

func TestInsertText(t *testing.T) {
	b := NewBufferFromString("ac")
	b.InsertText(1, "b\r\nx")
	if got, want := b.Text(), "ab\nxc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	b.InsertText(99, "z")
	if got, want := b.Text(), "ab\nxc"; got != want {
		t.Errorf("out-of-range insert changed text: %q", got)
	}
}

func TestLineConversions(t *testing.T) {
	b := NewBufferFromString("ab\n\ncde\n")

	lines := []struct {
		row   int
		start int
		len   int
		text  string
	}{
		{0, 0, 2, "ab"},
		{1, 3, 0, ""},
		{2, 4, 3, "cde"},
		{3, 8, 0, ""},
	}

	if b.LineCount() != len(lines) {
		t.Fatalf("LineCount() = %d, want %d", b.LineCount(), len(lines))
	}
	for _, l := range lines {
		if got := b.LineToChar(l.row); got != l.start {
			t.Errorf("LineToChar(%d) = %d, want %d", l.row, got, l.start)
		}
		if got := b.CharToLine(l.start); got != l.row {
			t.Errorf("CharToLine(%d) = %d, want %d", l.start, got, l.row)
		}
		if got := b.LineLen(l.row); got != l.len {
			t.Errorf("LineLen(%d) = %d, want %d", l.row, got, l.len)
		}
		if got := b.LineText(l.row); got != l.text {
			t.Errorf("LineText(%d) = %q, want %q", l.row, got, l.text)
		}
	}

	if got := b.CharToLine(100); got != 3 {
		t.Errorf("CharToLine past end = %d, want 3", got)
	}
	if got := b.LineToChar(100); got != b.Len() {
		t.Errorf("LineToChar past end = %d, want %d", got, b.Len())
	}
}

func TestLines(t *testing.T) {
	b := NewBufferFromString("x\ny\n")
	got := b.Lines()
	want := []string{"x", "y", ""}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	b := NewBufferFromString("hello")
	snap := b.Snapshot()

	b.InsertText(5, " world")
	b.DeleteChar(0)
	if snap.Text() != "hello" {
		t.Errorf("snapshot changed after edits: %q", snap.Text())
	}

	b.Restore(snap)
	if b.Text() != "hello" {
		t.Errorf("Restore() = %q, want %q", b.Text(), "hello")
	}
	if !b.Snapshot().Equals(SnapshotFromString("hello")) {
		t.Error("restored snapshot should equal a fresh one with the same text")
	}
}

func TestZeroSnapshot(t *testing.T) {
	b := NewBufferFromString("text")
	b.Restore(Snapshot{})
	if !b.IsEmpty() || b.LineCount() != 1 {
		t.Errorf("zero snapshot should restore an empty document, got %q", b.Text())
	}
	b.InsertChar(0, 'a')
	if b.Text() != "a" {
		t.Errorf("insert after zero restore = %q", b.Text())
	}
}

func TestWriteTo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  string
	}{
		{"lf", "a\nb", nil, "a\nb"},
		{"crlf preserved", "a\r\nb", nil, "a\r\nb"},
		{"forced lf", "a\r\nb", []Option{WithLF()}, "a\nb"},
		{"forced crlf", "a\nb", []Option{WithCRLF()}, "a\r\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			b := NewBufferFromString(tt.input, tt.opts...)
			n, err := b.WriteTo(&sb)
			if err != nil {
				t.Fatalf("WriteTo: %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("wrote %q, want %q", sb.String(), tt.want)
			}
			if n != int64(len(tt.want)) {
				t.Errorf("n = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestMixedLineEndings(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"a\nb\n", false},
		{"a\r\nb\r\n", false},
		{"a\rb", false},
		{"a\r\nb\n", true},
		{"a\rb\n", true},
	}

	for _, tt := range tests {
		if got := MixedLineEndings(tt.text); got != tt.want {
			t.Errorf("MixedLineEndings(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"", LineEndingLF},
		{"a\nb\n", LineEndingLF},
		{"a\r\nb\r\n", LineEndingCRLF},
		{"a\rb\r", LineEndingCR},
		{"a\r\nb\nc\n", LineEndingLF},
	}

	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
