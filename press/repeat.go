package press

import "time"

// DefaultGap is how long after the last auto-repeat a key counts as released.
const DefaultGap = 450 * time.Millisecond

// Repeat folds the auto-repeated presses of a held key into one down and one
// up. Terminals report no releases: the release is assumed once no repeat
// arrives within Gap, and is stamped with the last repeat.
type Repeat struct {
	Gap time.Duration

	held bool
	last time.Time
	seq  int
}

func NewRepeat(gap time.Duration) *Repeat {
	if gap <= 0 {
		gap = DefaultGap
	}
	return &Repeat{Gap: gap}
}

// Press registers a key event. It reports whether the event starts a new
// press, and the token of the release check to schedule after Gap.
func (r *Repeat) Press(at time.Time) (down bool, token int) {
	r.seq++
	r.last = at

	if r.held {
		return false, r.seq
	}
	r.held = true
	return true, r.seq
}

// Release resolves a release check. It returns the release time when token
// is still the latest one.
func (r *Repeat) Release(token int) (time.Time, bool) {
	if !r.held || token != r.seq {
		return time.Time{}, false
	}
	r.held = false
	return r.last, true
}

func (r *Repeat) Held() bool {
	return r.held
}

// Reset drops a held key without releasing it.
func (r *Repeat) Reset() {
	r.held = false
	r.seq++
}
