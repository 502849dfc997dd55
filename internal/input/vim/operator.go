package vim

// Operator is a normal-mode operator that acts on the range a motion
// covers.
type Operator uint8

const (
	// OpNone is the zero value; no operator is pending.
	OpNone Operator = iota

	// OpDelete removes the range and stores it in the clipboard.
	OpDelete

	// OpYank copies the range into the clipboard.
	OpYank
)

var operatorKeys = map[rune]Operator{
	'd': OpDelete,
	'y': OpYank,
}

// OperatorForKey returns the operator triggered by r.
func OperatorForKey(r rune) (Operator, bool) {
	op, ok := operatorKeys[r]
	return op, ok
}

// Key returns the trigger key, or 0 for OpNone.
func (o Operator) Key() rune {
	switch o {
	case OpDelete:
		return 'd'
	case OpYank:
		return 'y'
	default:
		return 0
	}
}

// String returns the operator name.
func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpYank:
		return "yank"
	default:
		return "none"
	}
}

// ChangesText returns true if the operator modifies the buffer.
func (o Operator) ChangesText() bool {
	return o == OpDelete
}
