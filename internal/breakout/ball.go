package breakout

import (
	"math"

	"github.com/KilakOriginal/breakout/internal/core"
)

// Ball is a circle moving at constant velocity.
type Ball struct {
	Position    core.Vec2 // center
	Radius      float64
	Velocity    core.Vec2
	MaxVelocity float64
}

// Update advances the ball by one explicit Euler step.
func (b *Ball) Update(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// BounceX reverses the horizontal velocity, capping its magnitude at MaxVelocity.
func (b *Ball) BounceX() {
	b.Velocity.X = reflect(b.Velocity.X, b.MaxVelocity)
}

// BounceY reverses the vertical velocity, capping its magnitude at MaxVelocity.
func (b *Ball) BounceY() {
	b.Velocity.Y = reflect(b.Velocity.Y, b.MaxVelocity)
}

// Bounds returns the bounding square used for block collisions.
func (b Ball) Bounds() core.Box {
	return core.BoxAround(b.Position, b.Radius)
}

// Top returns the y-coordinate of the ball's top edge.
func (b Ball) Top() float64 { return b.Position.Y - b.Radius }

// Bottom returns the y-coordinate of the ball's bottom edge.
func (b Ball) Bottom() float64 { return b.Position.Y + b.Radius }

// Speed returns the magnitude of the velocity.
func (b Ball) Speed() float64 { return b.Velocity.Len() }

func reflect(v, limit float64) float64 {
	return -math.Min(limit, math.Abs(v)) * sign(v)
}

// sign returns 1 for positive v and -1 otherwise.
func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
