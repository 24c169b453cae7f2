package timer

import (
	"testing"
	"time"
)

// fakeNow returns a time source backed by a mutable instant.
func fakeNow(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestElapsedTracksSimulatedTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewWithNow(fakeNow(&now))

	c.Start(0)
	for _, advance := range []int{0, 1, 7, 60, 899} {
		now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(advance) * time.Second)
		if got := c.Elapsed(); got != advance {
			t.Errorf("Elapsed after %ds = %d, want %d", advance, got, advance)
		}
	}
}

func TestStartResumesFromPriorElapsed(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewWithNow(fakeNow(&now))

	c.Start(120)
	if got := c.Elapsed(); got != 120 {
		t.Errorf("Elapsed immediately after Start(120) = %d, want 120", got)
	}

	now = now.Add(30 * time.Second)
	if got := c.Elapsed(); got != 150 {
		t.Errorf("Elapsed = %d, want 150", got)
	}
}

func TestPauseStartIdempotentWithoutTimeAdvance(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewWithNow(fakeNow(&now))

	c.Start(0)
	now = now.Add(45 * time.Second)

	// Any pause/start churn with no wall-clock advance must not move Elapsed.
	for i := 0; i < 5; i++ {
		c.Pause()
		c.Start(c.Elapsed())
	}

	if got := c.Elapsed(); got != 45 {
		t.Errorf("Elapsed after pause/start churn = %d, want 45", got)
	}
}

func TestPauseFreezesValue(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewWithNow(fakeNow(&now))

	c.Start(0)
	now = now.Add(10 * time.Second)
	c.Pause()

	now = now.Add(5 * time.Minute)
	if got := c.Elapsed(); got != 10 {
		t.Errorf("Elapsed while paused = %d, want 10", got)
	}
	if c.Running() {
		t.Error("expected clock to report not running while paused")
	}
}

func TestClockSkewClampsToZero(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewWithNow(fakeNow(&now))

	c.Start(0)
	// Wall clock jumps backwards past the start reference.
	now = now.Add(-time.Hour)

	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed with skewed clock = %d, want 0", got)
	}
}

func TestResetZeroes(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewWithNow(fakeNow(&now))

	c.Start(300)
	c.Reset()

	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed after Reset = %d, want 0", got)
	}
	if c.Running() {
		t.Error("expected clock stopped after Reset")
	}
}
