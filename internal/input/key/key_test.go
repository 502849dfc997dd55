package key

import (
	"errors"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Esc"},
		{KeyEnter, "CR"},
		{KeyBackspace, "BS"},
		{KeyPageDown, "PageDown"},
		{Key(200), "Key(200)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Esc", KeyEscape},
		{"escape", KeyEscape},
		{"CR", KeyEnter},
		{"Return", KeyEnter},
		{" bs ", KeyBackspace},
		{"pgdn", KeyPageDown},
		{"unknown", KeyNone},
	}

	for _, tt := range tests {
		if got := FromName(tt.name); got != tt.want {
			t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifier(t *testing.T) {
	m := ModCtrl.With(ModAlt)
	if !m.Has(ModCtrl) || !m.Has(ModAlt) || m.Has(ModShift) {
		t.Errorf("unexpected modifier set %v", m)
	}
	if got := m.String(); got != "Ctrl+Alt" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+Alt")
	}
	if got := ModNone.String(); got != "" {
		t.Errorf("ModNone.String() = %q, want empty", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"G", NewRuneEvent('G', ModNone)},
		{"$", NewRuneEvent('$', ModNone)},
		{"<", NewRuneEvent('<', ModNone)},
		{"世", NewRuneEvent('世', ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<Enter>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<BS>", NewSpecialEvent(KeyBackspace, ModNone)},
		{"<Space>", NewRuneEvent(' ', ModNone)},
		{"<lt>", NewRuneEvent('<', ModNone)},
		{"<NL>", NewRuneEvent('\n', ModNone)},
		{"<C-r>", NewRuneEvent('r', ModCtrl)},
		{"<C-R>", NewRuneEvent('r', ModCtrl)},
		{"<A-x>", NewRuneEvent('x', ModAlt)},
		{"<C-S-Left>", NewSpecialEvent(KeyLeft, ModCtrl|ModShift)},
		{"<C-->", NewRuneEvent('-', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		err  error
	}{
		{"", ErrEmptySpec},
		{"ab", ErrInvalidSpec},
		{"<>", ErrInvalidSpec},
		{"<Esc", ErrUnmatchedBracket},
		{"<X-a>", ErrInvalidSpec},
		{"<NoSuchKey>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.err) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.err)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('<', ModNone), "<lt>"},
		{NewRuneEvent('r', ModCtrl), "<C-r>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyLeft, ModShift), "<S-Left>"},
	}

	for _, tt := range tests {
		got := tt.event.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		back, err := Parse(got)
		if err != nil {
			t.Errorf("Parse(%q): %v", got, err)
			continue
		}
		if back.Key != tt.event.Key || back.Rune != tt.event.Rune {
			t.Errorf("round trip of %q = %#v", got, back)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		text     bool
		ctrlR    bool
		isEscape bool
	}{
		{"letter", NewRuneEvent('x', ModNone), true, false, false},
		{"shifted letter", NewRuneEvent('X', ModShift), true, false, false},
		{"newline rune", NewRuneEvent('\n', ModNone), true, false, false},
		{"ctrl-r", NewRuneEvent('r', ModCtrl), false, true, false},
		{"alt letter", NewRuneEvent('r', ModAlt), false, false, false},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), false, false, true},
		{"ctrl-escape", NewSpecialEvent(KeyEscape, ModCtrl), false, false, false},
		{"control char", NewRuneEvent(0x01, ModNone), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsText(); got != tt.text {
				t.Errorf("IsText() = %v, want %v", got, tt.text)
			}
			if got := tt.event.IsCtrlRune('r'); got != tt.ctrlR {
				t.Errorf("IsCtrlRune('r') = %v, want %v", got, tt.ctrlR)
			}
			if got := tt.event.Is(KeyEscape); got != tt.isEscape {
				t.Errorf("Is(KeyEscape) = %v, want %v", got, tt.isEscape)
			}
		})
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		in   string
		want []Event
	}{
		{"", nil},
		{"dw", []Event{NewRuneEvent('d', ModNone), NewRuneEvent('w', ModNone)}},
		{"ihi<Esc>", []Event{
			NewRuneEvent('i', ModNone),
			NewRuneEvent('h', ModNone),
			NewRuneEvent('i', ModNone),
			NewSpecialEvent(KeyEscape, ModNone),
		}},
		{":w<CR>", []Event{
			NewRuneEvent(':', ModNone),
			NewRuneEvent('w', ModNone),
			NewSpecialEvent(KeyEnter, ModNone),
		}},
		{"u<C-r>", []Event{NewRuneEvent('u', ModNone), NewRuneEvent('r', ModCtrl)}},
		{"a<b", []Event{
			NewRuneEvent('a', ModNone),
			NewRuneEvent('<', ModNone),
			NewRuneEvent('b', ModNone),
		}},
		{"<x y>", []Event{
			NewRuneEvent('<', ModNone),
			NewRuneEvent('x', ModNone),
			NewRuneEvent(' ', ModNone),
			NewRuneEvent('y', ModNone),
			NewRuneEvent('>', ModNone),
		}},
		{"é世", []Event{NewRuneEvent('é', ModNone), NewRuneEvent('世', ModNone)}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSequence(tt.in)
			if err != nil {
				t.Fatalf("ParseSequence(%q): %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSequence(%q) = %d events, want %d", tt.in, len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Equals(tt.want[i]) {
					t.Errorf("event %d = %#v, want %#v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatSequence(t *testing.T) {
	in := "ihi<Esc>:wq<CR>"
	if got := FormatSequence(MustParseSequence(in)); got != in {
		t.Errorf("FormatSequence = %q, want %q", got, in)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid spec")
		}
	}()
	MustParse("")
}
