package sim

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Clock{Max: 0.066}

	if dt := c.Tick(base); dt != 0 {
		t.Fatalf("first tick = %v, want 0", dt)
	}
	if dt := c.Tick(base.Add(16 * time.Millisecond)); dt != 0.016 {
		t.Fatalf("tick = %v, want 0.016", dt)
	}
	if dt := c.Tick(base.Add(3 * time.Second)); dt != 0.066 {
		t.Fatalf("stalled tick = %v, want clamp 0.066", dt)
	}
	if dt := c.Tick(base); dt != 0 {
		t.Fatalf("backwards tick = %v, want 0", dt)
	}

	c.Stop()
	if dt := c.Tick(base.Add(time.Hour)); dt != 0 {
		t.Fatalf("tick after stop = %v, want 0", dt)
	}
}
