// Package press tells short presses of the activation key from long ones.
package press

import "time"

// DefaultThreshold is the hold time of a long press.
const DefaultThreshold = 2000 * time.Millisecond

type Kind int

const (
	// None is an unmatched release.
	None Kind = iota
	Short
	Long
)

func (k Kind) String() string {
	switch k {
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return "none"
	}
}

// Tracker is idle or pressed at some instant.
type Tracker struct {
	Threshold time.Duration

	pressed bool
	at      time.Time
}

func New(threshold time.Duration) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{Threshold: threshold}
}

// Down records a press. A press while one is pending is ignored and
// reported as false.
func (t *Tracker) Down(at time.Time) bool {
	if t.pressed {
		return false
	}
	t.pressed = true
	t.at = at
	return true
}

// Up ends the pending press.
func (t *Tracker) Up(at time.Time) Kind {
	if !t.pressed {
		return None
	}
	t.pressed = false

	if at.Sub(t.at) >= t.Threshold {
		return Long
	}
	return Short
}

func (t *Tracker) Pending() bool {
	return t.pressed
}

// Cancel forgets a pending press.
func (t *Tracker) Cancel() {
	t.pressed = false
}
