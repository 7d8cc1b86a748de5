package driver

import (
	"math"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/core"
)

// DefaultDeadzone is the analog deflection below which the paddle stops.
const DefaultDeadzone = 0.1

// Input is the player's intent for one tick.
type Input struct {
	Direction       breakout.Direction
	SpeedMultiplier float64 // in (0, 1]; 0 means 1
	Pause           bool    // toggles pause
	Restart         bool    // starts a new game at level 1
}

// AxisInput maps an analog deflection in [-1, 1] to a direction and a speed
// multiplier. Inside the deadzone the paddle stops; outside it the multiplier
// grows linearly from 0.1 to 1.
func AxisInput(axis, deadzone float64) (breakout.Direction, float64) {
	a := core.ClampF(axis, -1, 1)
	if math.Abs(a) <= deadzone || math.IsNaN(a) {
		return breakout.Stop, 1
	}
	mult := 0.1 + math.Abs(a)*0.9
	if a < 0 {
		return breakout.Left, mult
	}
	return breakout.Right, mult
}

// FromFrame converts a platform input frame. A non-zero axis overrides the
// directional actions; pressing both directions cancels out.
func FromFrame(f core.InputFrame, deadzone float64) Input {
	in := Input{
		Direction:       breakout.Stop,
		SpeedMultiplier: 1,
		Pause:           f.Has(core.ActionPause),
		Restart:         f.Has(core.ActionRestart),
	}

	left, right := f.Has(core.ActionLeft), f.Has(core.ActionRight)
	switch {
	case left && !right:
		in.Direction = breakout.Left
	case right && !left:
		in.Direction = breakout.Right
	}

	if f.Axis != 0 {
		if dir, mult := AxisInput(f.Axis, deadzone); dir != breakout.Stop {
			in.Direction, in.SpeedMultiplier = dir, mult
		}
	}
	return in
}
