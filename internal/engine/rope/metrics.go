package rope

import (
	"strings"
	"unicode/utf8"
)

// TextSummary holds aggregated metrics for a span of text.
// Summaries form a monoid under Add, which lets internal nodes cache the
// totals of their children.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the number of Unicode scalar values.
	Chars int

	// Lines is the number of newline characters.
	Lines int
}

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	return TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// IsZero returns true if the summary describes empty text.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	return TextSummary{
		Bytes: len(s),
		Chars: utf8.RuneCountInString(s),
		Lines: strings.Count(s, "\n"),
	}
}

// charToByte converts a character offset within s to a byte offset.
// Offsets past the end map to len(s).
func charToByte(s string, chars int) int {
	if chars <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == chars {
			return i
		}
		n++
	}
	return len(s)
}

// nthNewlineEnd returns the character offset just past the nth newline
// (1-indexed) in s, or -1 if s has fewer newlines.
func nthNewlineEnd(s string, n int) int {
	if n <= 0 {
		return 0
	}
	seen := 0
	chars := 0
	for _, r := range s {
		chars++
		if r == '\n' {
			seen++
			if seen == n {
				return chars
			}
		}
	}
	return -1
}

// newlinesBefore counts newlines among the first chars characters of s.
func newlinesBefore(s string, chars int) int {
	count := 0
	n := 0
	for _, r := range s {
		if n >= chars {
			break
		}
		if r == '\n' {
			count++
		}
		n++
	}
	return count
}
