// Package playback controls what is playing: episodes, pause, mute, seeking,
// the next episode prompt and the auto-hiding controls.
package playback

import (
	"math"

	"github.com/mydrama-tv/mydrama/util"
)

// Clock tracks the time signals of one media element.
type Clock struct {
	current  float64
	duration float64
}

func valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Update records a time-update. Invalid values are ignored.
func (c *Clock) Update(current float64) {
	if valid(current) {
		c.current = current
	}
}

// SetDuration records loaded metadata. Invalid values are ignored.
func (c *Clock) SetDuration(duration float64) {
	if valid(duration) {
		c.duration = duration
	}
}

func (c *Clock) Reset() {
	c.current, c.duration = 0, 0
}

func (c *Clock) Current() float64 {
	return c.current
}

func (c *Clock) Duration() float64 {
	return c.duration
}

// Remaining is zero until the duration is known.
func (c *Clock) Remaining() float64 {
	if c.duration <= 0 {
		return 0
	}
	return c.duration - c.current
}

// Fraction is the played share in [0, 1].
func (c *Clock) Fraction() float64 {
	if c.duration <= 0 {
		return 0
	}
	return util.Clamp(c.current/c.duration, 0, 1)
}

// Position converts a fraction of the track to seconds. Out of range and NaN
// fractions are clamped.
func (c *Clock) Position(fraction float64) float64 {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	return util.Clamp(fraction, 0, 1) * c.duration
}
