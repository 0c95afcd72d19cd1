package app

import "testing"

func TestClockCarriesRemainder(t *testing.T) {
	c := NewClock(0.25, 0)

	if n := c.Advance(0.375); n != 1 {
		t.Fatalf("steps = %d, want 1", n)
	}
	if c.Pending() != 0.125 {
		t.Fatalf("pending = %f, want 0.125", c.Pending())
	}
	if n := c.Advance(0.125); n != 1 {
		t.Fatalf("steps = %d, want 1", n)
	}
	if n := c.Advance(0.1); n != 0 {
		t.Fatalf("steps = %d, want 0", n)
	}
}

func TestClockIgnoresNegative(t *testing.T) {
	c := NewClock(0.25, 0)
	if n := c.Advance(-1); n != 0 || c.Pending() != 0 {
		t.Fatalf("steps = %d, pending = %f", n, c.Pending())
	}
}

func TestClockCapsBacklog(t *testing.T) {
	c := NewClock(0.25, 4)

	if n := c.Advance(10); n != 4 {
		t.Fatalf("steps = %d, want 4", n)
	}
	if c.Pending() != 0 {
		t.Fatalf("backlog kept: %f", c.Pending())
	}

	if n := c.Advance(1.125); n != 4 {
		t.Fatalf("steps = %d, want 4", n)
	}
	if c.Pending() != 0.125 {
		t.Fatalf("pending = %f, want 0.125", c.Pending())
	}
}
