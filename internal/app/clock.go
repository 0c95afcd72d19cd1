// internal/app/clock.go
package app

// Clock turns variable frame time into a whole number of fixed steps so the
// simulation does not depend on the display refresh rate.
type Clock struct {
	Step     float64
	MaxSteps int
	acc      float64
}

func NewClock(step float64, maxSteps int) *Clock {
	return &Clock{Step: step, MaxSteps: maxSteps}
}

// Advance adds elapsed seconds and returns how many steps to run now. The
// remainder carries over. After a stall the backlog beyond MaxSteps is
// dropped.
func (c *Clock) Advance(elapsed float64) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	steps := 0
	for c.acc >= c.Step {
		c.acc -= c.Step
		steps++
		if c.MaxSteps > 0 && steps == c.MaxSteps {
			if c.acc >= c.Step {
				c.acc = 0
			}
			break
		}
	}
	return steps
}

// Pending returns accumulated time not yet consumed.
func (c *Clock) Pending() float64 {
	return c.acc
}
