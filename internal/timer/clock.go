// Package timer owns elapsed-time tracking for a test session.
//
// Elapsed time is always recomputed from a fixed start reference rather
// than accumulated tick by tick, so missed ticks (a backgrounded or
// suspended terminal) never cause drift.
package timer

import "time"

// Clock measures elapsed whole seconds against a start reference.
// The zero value is not usable; create one with New.
type Clock struct {
	now      func() time.Time
	startRef time.Time
	frozen   int
	running  bool
}

// New creates a stopped Clock using wall-clock time.
func New() *Clock {
	return NewWithNow(time.Now)
}

// NewWithNow creates a stopped Clock with an injected time source.
// Tests use this to simulate time without sleeping.
func NewWithNow(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start begins (or resumes) timing with the given number of seconds
// already on the clock. The start reference is re-derived so that
// Elapsed() == elapsedSoFar immediately after the call.
func (c *Clock) Start(elapsedSoFar int) {
	c.startRef = c.now().Add(-time.Duration(elapsedSoFar) * time.Second)
	c.frozen = 0
	c.running = true
}

// Pause freezes the clock at its current elapsed value and discards the
// start reference. A later Start(Elapsed()) resumes without drift.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.frozen = c.Elapsed()
	c.running = false
}

// Reset stops the clock and zeroes the elapsed value.
func (c *Clock) Reset() {
	c.frozen = 0
	c.running = false
	c.startRef = time.Time{}
}

// Elapsed returns whole seconds since the start reference, or the frozen
// value while paused. Negative deltas from clock skew clamp to zero.
func (c *Clock) Elapsed() int {
	if !c.running {
		return c.frozen
	}
	d := c.now().Sub(c.startRef)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// Running reports whether the clock is currently ticking.
func (c *Clock) Running() bool {
	return c.running
}
