package driver

import "github.com/KilakOriginal/breakout/internal/breakout"

// Autopilot steers the paddle under the ball. It aims a quarter paddle off
// center so the ball keeps a lateral component and does not bounce
// vertically forever.
func Autopilot(snap breakout.Snapshot, deadzone float64) Input {
	target := snap.BallX
	if snap.BallX < snap.Width/2 {
		target += snap.PaddleW / 4
	} else {
		target -= snap.PaddleW / 4
	}

	center := snap.PaddleX + snap.PaddleW/2
	axis := (target - center) / (snap.PaddleW / 2)

	dir, mult := AxisInput(axis, deadzone)
	return Input{Direction: dir, SpeedMultiplier: mult}
}
