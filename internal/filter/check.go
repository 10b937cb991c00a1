package filter

// Check is a definite checkbox decision.
type Check bool

const (
	Unchecked Check = false
	Checked   Check = true
)

// Signal is the raw value a tri-state checkbox reports.
type Signal string

const (
	SignalTrue          Signal = "true"
	SignalFalse         Signal = "false"
	SignalIndeterminate Signal = "indeterminate"
)

// Decide maps a raw signal to a Check. ok is false for the indeterminate
// state and for anything unrecognised; callers treat that as a no-op.
func (s Signal) Decide() (c Check, ok bool) {
	switch s {
	case SignalTrue:
		return Checked, true
	case SignalFalse:
		return Unchecked, true
	default:
		return Unchecked, false
	}
}
