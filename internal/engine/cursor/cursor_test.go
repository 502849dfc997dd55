package cursor

import (
	"testing"

	"github.com/dshills/rune/internal/engine/buffer"
)

func TestToOffset(t *testing.T) {
	doc := buffer.NewBufferFromString("abc\nde\n\nfgh")
	tests := []struct {
		pos  Position
		want int
	}{
		{Position{0, 0}, 0},
		{Position{0, 2}, 2},
		{Position{1, 0}, 4},
		{Position{1, 2}, 6},
		{Position{2, 0}, 7},
		{Position{3, 3}, 11},
	}

	for _, tt := range tests {
		if got := ToOffset(doc, tt.pos); got != tt.want {
			t.Errorf("ToOffset(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestFromOffsetRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a",
		"abc\nde\n\nfgh",
		"trailing\n",
		"\n\n\n",
		"世界\n🌍x\n",
	}

	for _, text := range texts {
		doc := buffer.NewBufferFromString(text)
		for o := 0; o <= doc.Len(); o++ {
			p := FromOffset(doc, o)
			if got := ToOffset(doc, p); got != o {
				t.Errorf("%q: ToOffset(FromOffset(%d)) = %d (pos %v)", text, o, got, p)
			}
		}
	}
}

func TestFromOffsetClamps(t *testing.T) {
	doc := buffer.NewBufferFromString("ab\ncd")
	if got := FromOffset(doc, 100); got != (Position{1, 2}) {
		t.Errorf("FromOffset past end = %v, want {1 2}", got)
	}
	if got := FromOffset(doc, -5); got != (Position{0, 0}) {
		t.Errorf("FromOffset negative = %v, want {0 0}", got)
	}
}

func TestMove(t *testing.T) {
	doc := buffer.NewBufferFromString("hello world\nhi\n\nlast line")
	tests := []struct {
		name     string
		from     Position
		dr, dc   int
		expected Position
	}{
		{"right", Position{0, 0}, 0, 1, Position{0, 1}},
		{"left at start", Position{0, 0}, 0, -1, Position{0, 0}},
		{"right at end", Position{0, 10}, 0, 1, Position{0, 10}},
		{"up at top", Position{0, 3}, -1, 0, Position{0, 3}},
		{"down onto short line", Position{0, 8}, 1, 0, Position{1, 1}},
		{"down onto empty line", Position{1, 1}, 1, 0, Position{2, 0}},
		{"down at bottom", Position{3, 4}, 1, 0, Position{3, 4}},
		{"no sticky column", Position{1, 1}, -1, 0, Position{0, 1}},
		{"large jump", Position{0, 0}, 100, 100, Position{3, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Move(doc, tt.from, tt.dr, tt.dc); got != tt.expected {
				t.Errorf("Move(%v, %d, %d) = %v, want %v", tt.from, tt.dr, tt.dc, got, tt.expected)
			}
		})
	}
}

func TestMoveStaysInBounds(t *testing.T) {
	doc := buffer.NewBufferFromString("abc\n\nlonger line\nx")
	deltas := []int{-3, -1, 0, 1, 3}

	for row := -1; row <= 5; row++ {
		for col := -1; col <= 12; col++ {
			for _, dr := range deltas {
				for _, dc := range deltas {
					p := Move(doc, Position{row, col}, dr, dc)
					if p.Row < 0 || p.Row >= doc.LineCount() {
						t.Fatalf("row out of bounds: %v", p)
					}
					if p.Col < 0 || p.Col > MaxCol(doc, p.Row) {
						t.Fatalf("col out of bounds: %v", p)
					}
				}
			}
		}
	}
}

func TestClamp(t *testing.T) {
	doc := buffer.NewBufferFromString("ab\n")
	tests := []struct {
		in, want Position
	}{
		{Position{0, 2}, Position{0, 1}},
		{Position{5, 5}, Position{1, 0}},
		{Position{-1, -1}, Position{0, 0}},
	}

	for _, tt := range tests {
		if got := Clamp(doc, tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Row: 2, Col: 0}).String(); got != "3:1" {
		t.Errorf("String() = %q, want %q", got, "3:1")
	}
}
