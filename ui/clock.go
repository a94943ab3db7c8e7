package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clock paces frames on raylib's timer.
type Clock struct {
	last float64
}

func NewClock() *Clock {
	return &Clock{last: rl.GetTime()}
}

// Tick waits out the rest of the current 1/ticksPerSecond frame.
func (c *Clock) Tick(ticksPerSecond int) {
	frame := 1.0 / float64(max(1, ticksPerSecond))
	if elapsed := rl.GetTime() - c.last; elapsed < frame {
		rl.WaitTime(frame - elapsed)
	}
	c.last = rl.GetTime()
}
