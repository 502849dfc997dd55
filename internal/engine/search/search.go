// Package search implements the editor's substring search with wraparound.
//
// Offsets are character offsets into the document. Matching is exact
// and case-sensitive; there is no pattern syntax.
package search

import (
	"strings"
	"unicode/utf8"
)

// Text is the read side of a document needed for searching.
type Text interface {
	Len() int
	Slice(start, end int) string
}

// State holds the last query and direction. It persists until replaced.
type State struct {
	Query   string
	Forward bool
}

// SetQueryAndSearchForward replaces the query, marks the direction as
// forward and runs FindNext.
func (s *State) SetQueryAndSearchForward(text Text, cursor int, query string) (int, bool) {
	s.Query = query
	s.Forward = true
	return s.FindNext(text, cursor)
}

// FindNext returns the first match starting after cursor. If there is
// none it wraps and returns the first match lying entirely within
// [0, cursor+1). An empty query never matches.
func (s *State) FindNext(text Text, cursor int) (int, bool) {
	if s.Query == "" {
		return 0, false
	}

	start := cursor + 1
	if start < text.Len() {
		if pos, ok := index(text.Slice(start, text.Len()), s.Query); ok {
			return start + pos, true
		}
	}
	return index(text.Slice(0, start), s.Query)
}

// FindPrevious returns the last match lying entirely before cursor. If
// there is none it wraps and returns the last match starting at or
// after cursor. An empty query never matches.
func (s *State) FindPrevious(text Text, cursor int) (int, bool) {
	if s.Query == "" {
		return 0, false
	}

	if pos, ok := lastIndex(text.Slice(0, cursor), s.Query); ok {
		return pos, true
	}
	if pos, ok := lastIndex(text.Slice(cursor, text.Len()), s.Query); ok {
		return max(cursor, 0) + pos, true
	}
	return 0, false
}

// index returns the character offset of the first occurrence of query.
func index(s, query string) (int, bool) {
	i := strings.Index(s, query)
	if i < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(s[:i]), true
}

// lastIndex returns the character offset of the last occurrence of query.
func lastIndex(s, query string) (int, bool) {
	i := strings.LastIndex(s, query)
	if i < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(s[:i]), true
}
