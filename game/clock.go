package game

import "github.com/pthm-cable/cloudburst/systems"

// FrameClock turns frame timestamps into deltas.
type FrameClock struct {
	last float64 // Previous timestamp in milliseconds
	ok   bool    // Whether last holds a timestamp from the current run
}

// Advance records ts (milliseconds) and returns the elapsed seconds since the
// previous call. ok is false on the first call after construction or Reset,
// and when the delta is not finite.
func (c *FrameClock) Advance(ts float64) (dt float32, ok bool) {
	prev, had := c.last, c.ok
	c.last, c.ok = ts, true
	if !had {
		return 0, false
	}
	dt = float32((ts - prev) / 1000)
	if !systems.Finite(dt) {
		return 0, false
	}
	return dt, true
}

// Reset forgets the previous timestamp so the next frame has no delta.
// Last keeps reporting the old value.
func (c *FrameClock) Reset() {
	c.ok = false
}

// Last returns the most recent timestamp seen, and whether one is pending a delta.
func (c *FrameClock) Last() (float64, bool) {
	return c.last, c.ok
}
