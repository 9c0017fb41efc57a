package sim

import (
	"math"
	"time"
)

// Clock converts wall-clock frame times into physics time steps.
type Clock struct {
	// Max caps a single step, so a stalled frame cannot tunnel the bird
	// through a pipe.
	Max float64

	last time.Time
}

// Tick returns the seconds elapsed since the previous Tick, capped at Max.
// The first Tick after a Stop returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.Max > 0 {
		dt = math.Min(dt, c.Max)
	}
	return dt
}

// Stop forgets the previous frame time.
func (c *Clock) Stop() { c.last = time.Time{} }
