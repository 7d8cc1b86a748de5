package breakout

import (
	"math"

	"github.com/KilakOriginal/breakout/internal/core"
)

// Paddle is the player-controlled bar. It accelerates exponentially while a
// direction is held and decelerates more sharply once released.
type Paddle struct {
	Position core.Vec2 // top-left
	Size     core.Vec2 // width, height
	Velocity core.Vec2 // Y is always 0

	MaxSpeed     float64
	BaseSpeed    float64
	Acceleration float64
	Deceleration float64
	BoardWidth   float64
}

// NewPaddle creates a stationary paddle whose speed limits derive from boardWidth.
// The position is clamped into the board.
func NewPaddle(pos, size core.Vec2, boardWidth float64, t Tuning) Paddle {
	p := Paddle{
		Position:     pos,
		Size:         size,
		MaxSpeed:     t.PaddleMaxSpeedRatio * boardWidth,
		BaseSpeed:    t.PaddleBaseSpeedRatio * boardWidth,
		Acceleration: t.PaddleAcceleration,
		Deceleration: math.Pow(t.PaddleAcceleration, 1.5),
		BoardWidth:   boardWidth,
	}
	p.Position.X = core.ClampF(pos.X, 0, p.MaxX())
	return p
}

// Speed returns the absolute horizontal speed.
func (p Paddle) Speed() float64 {
	return math.Abs(p.Velocity.X)
}

// Bounds returns the paddle's bounding box.
func (p Paddle) Bounds() core.Box {
	return core.BoxAt(p.Position, p.Size)
}

// MaxX returns the largest allowed x of the top-left corner.
func (p Paddle) MaxX() float64 {
	return math.Max(0, p.BoardWidth-p.Size.X)
}

// Update applies one tick of the motion model. speedMultiplier scales the
// top speed and is expected in (0, 1].
func (p *Paddle) Update(dir Direction, dt, speedMultiplier float64) {
	speed := p.Speed()

	if dir != Left && dir != Right {
		if speed == 0 {
			return
		}
		s := sign(p.Velocity.X)
		speed = math.Max(speed-speed*p.Deceleration*dt, 0)
		// The decay is asymptotic; below the start kick speed the paddle halts.
		if speed < p.BaseSpeed {
			speed = 0
		}
		p.Velocity = core.Vec2{X: speed * s}
		p.integrate(dt)
		return
	}

	speed = math.Max(speed, p.BaseSpeed)
	speed = math.Min(speed+speed*p.Acceleration*dt, p.MaxSpeed*speedMultiplier)

	p.Velocity = core.Vec2{X: speed * float64(dir)}
	p.integrate(dt)
}

func (p *Paddle) integrate(dt float64) {
	p.Position.X = core.ClampF(p.Position.X+p.Velocity.X*dt, 0, p.MaxX())
}
