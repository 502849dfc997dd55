package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a single key in Vim notation: a lone character such as
// "a" or "$", or a bracketed form such as "<Esc>", "<CR>" or "<C-r>".
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && len(spec) > 1 {
		if !strings.HasSuffix(spec, ">") {
			return Event{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		return parseBracketed(spec[1 : len(spec)-1])
	}

	r, size := utf8.DecodeRuneInString(spec)
	if size != len(spec) {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return NewRuneEvent(r, ModNone), nil
}

// parseBracketed parses the inside of <...>, e.g. "C-s", "S-Left", "CR".
func parseBracketed(inner string) (Event, error) {
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	parts := strings.Split(inner, "-")
	name := parts[len(parts)-1]

	// "<C-->" names the minus key.
	if name == "" && len(parts) > 1 {
		name = "-"
		parts = parts[:len(parts)-1]
	}

	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierFromVim(p)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	if k := FromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return NewRuneEvent(r, mods), nil
	}

	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || size != len(name) {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	if mods.Has(ModCtrl) {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code and tests.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return e
}

// ParseSequence parses a run of key notation into events.
// Examples: "dw", "ihi<Esc>", ":wq<CR>", "<C-r>".
// A '<' that does not start a valid bracketed key is taken literally.
func ParseSequence(s string) ([]Event, error) {
	var events []Event
	for len(s) > 0 {
		if s[0] == '<' {
			if end := strings.IndexByte(s, '>'); end > 1 {
				if e, err := Parse(s[:end+1]); err == nil {
					events = append(events, e)
					s = s[end+1:]
					continue
				}
			}
		}

		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrInvalidSpec, s)
		}
		events = append(events, NewRuneEvent(r, ModNone))
		s = s[size:]
	}
	return events, nil
}

// MustParseSequence parses a sequence and panics on error.
func MustParseSequence(s string) []Event {
	events, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return events
}

// FormatSequence renders events back into key notation.
func FormatSequence(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(e.String())
	}
	return sb.String()
}
