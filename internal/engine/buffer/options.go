package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the line ending used when the buffer is written out.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithLF configures the buffer to write Unix line endings (\n).
func WithLF() Option {
	return WithLineEnding(LineEndingLF)
}

// WithCRLF configures the buffer to write Windows line endings (\r\n).
func WithCRLF() Option {
	return WithLineEnding(LineEndingCRLF)
}

func countLineEndings(text string) (crlf, cr, lf int) {
	crlf = strings.Count(text, "\r\n")
	cr = strings.Count(text, "\r") - crlf
	lf = strings.Count(text, "\n") - crlf
	return crlf, cr, lf
}

// MixedLineEndings reports whether text uses more than one kind of line
// ending. Such text is written back with DetectLineEnding's choice only.
func MixedLineEndings(text string) bool {
	kinds := 0
	crlf, cr, lf := countLineEndings(text)
	for _, n := range []int{crlf, cr, lf} {
		if n > 0 {
			kinds++
		}
	}
	return kinds > 1
}

// DetectLineEnding returns the most common line ending in text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	crlf, cr, lf := countLineEndings(text)

	switch {
	case crlf > lf && crlf >= cr:
		return LineEndingCRLF
	case cr > lf && cr > crlf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// normalizeLineEndings converts every line ending to "\n".
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
