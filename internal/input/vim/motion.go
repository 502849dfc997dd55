package vim

import "unicode"

// Motion is a cursor motion that can complete a pending operator.
type Motion uint8

const (
	MotionNone Motion = iota
	MotionWordForward
	MotionWordBackward
	MotionLeft
	MotionDown
	MotionUp
	MotionRight
	MotionLineStart
	MotionLineEnd
)

var motionKeys = map[rune]Motion{
	'w': MotionWordForward,
	'b': MotionWordBackward,
	'h': MotionLeft,
	'j': MotionDown,
	'k': MotionUp,
	'l': MotionRight,
	'0': MotionLineStart,
	'$': MotionLineEnd,
}

// MotionForKey returns the motion triggered by r.
func MotionForKey(r rune) (Motion, bool) {
	m, ok := motionKeys[r]
	return m, ok
}

var motionNames = [...]string{
	MotionNone:         "none",
	MotionWordForward:  "word-forward",
	MotionWordBackward: "word-backward",
	MotionLeft:         "left",
	MotionDown:         "down",
	MotionUp:           "up",
	MotionRight:        "right",
	MotionLineStart:    "line-start",
	MotionLineEnd:      "line-end",
}

// String returns the motion name.
func (m Motion) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return "unknown"
}

// Delta returns the (row, col) step of a character motion.
// ok is false for motions that are not a fixed step.
func (m Motion) Delta() (rowDelta, colDelta int, ok bool) {
	switch m {
	case MotionLeft:
		return 0, -1, true
	case MotionRight:
		return 0, 1, true
	case MotionUp:
		return -1, 0, true
	case MotionDown:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// Text is the character access needed by word motions.
type Text interface {
	Len() int
	CharAt(offset int) (rune, bool)
}

func isSpace(t Text, offset int) bool {
	r, _ := t.CharAt(offset)
	return unicode.IsSpace(r)
}

// NextWordStart returns the offset reached by a forward word motion: skip
// the rest of the current non-whitespace run, then any whitespace. The
// result may be Len() when no further word exists.
func NextWordStart(t Text, offset int) int {
	n := t.Len()
	offset = max(0, min(offset, n))
	for offset < n && !isSpace(t, offset) {
		offset++
	}
	for offset < n && isSpace(t, offset) {
		offset++
	}
	return offset
}

// PrevWordStart returns the offset reached by a backward word motion:
// step back one, skip whitespace, then move to the start of that
// non-whitespace run. At offset 0 it stays put.
func PrevWordStart(t Text, offset int) int {
	offset = min(offset, t.Len())
	if offset <= 0 {
		return 0
	}

	offset--
	for offset > 0 && isSpace(t, offset) {
		offset--
	}
	for offset > 0 && !isSpace(t, offset-1) {
		offset--
	}
	return offset
}
