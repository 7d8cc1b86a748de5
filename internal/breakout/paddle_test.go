package breakout

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/KilakOriginal/breakout/internal/core"
)

func newTestPaddle() Paddle {
	// Default board: 800 wide, 15 columns.
	bs := 800.0 / 15
	return NewPaddle(core.V2(400-1.5*bs, 950), core.V2(3*bs, bs/2), 800, DefaultTuning())
}

func TestNewPaddleDerivedSpeeds(t *testing.T) {
	p := newTestPaddle()

	if p.MaxSpeed != 64 {
		t.Errorf("MaxSpeed = %v, expected 64", p.MaxSpeed)
	}
	if p.BaseSpeed != 16 {
		t.Errorf("BaseSpeed = %v, expected 16", p.BaseSpeed)
	}
	if expected := math.Pow(1.5, 1.5); p.Deceleration != expected {
		t.Errorf("Deceleration = %v, expected %v", p.Deceleration, expected)
	}
}

func TestPaddleStartKick(t *testing.T) {
	p := newTestPaddle()
	dt := 1.0 / 60

	p.Update(Right, dt, 1)

	expected := 16 + 16*1.5*dt
	if p.Velocity.X != expected {
		t.Errorf("Velocity.X = %v, expected %v", p.Velocity.X, expected)
	}
	if p.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, expected 0", p.Velocity.Y)
	}
}

func TestPaddleSpeedMultiplierCapsSpeed(t *testing.T) {
	p := newTestPaddle()
	for range 600 {
		p.Update(Left, 1.0/60, 0.5)
	}
	if p.Speed() > p.MaxSpeed*0.5 {
		t.Errorf("Speed() = %v, expected at most %v", p.Speed(), p.MaxSpeed*0.5)
	}
}

func TestPaddleLeftThenStop(t *testing.T) {
	p := newTestPaddle()
	dt := 1.0 / 60
	prevX := p.Position.X

	for range 30 {
		p.Update(Left, dt, 1)
		if p.Position.X > prevX {
			t.Fatalf("moved right while holding left: %v -> %v", prevX, p.Position.X)
		}
		prevX = p.Position.X
	}
	if p.Speed() == 0 {
		t.Fatal("paddle should be moving after holding left")
	}

	prevSpeed := p.Speed()
	for i := range 60 {
		p.Update(Stop, dt, 1)
		if p.Position.X > prevX {
			t.Fatalf("tick %d: paddle reversed: %v -> %v", i, prevX, p.Position.X)
		}
		if p.Speed() > prevSpeed {
			t.Fatalf("tick %d: speed increased while stopping: %v -> %v", i, prevSpeed, p.Speed())
		}
		if p.Velocity.X > 0 {
			t.Fatalf("tick %d: velocity changed sign: %v", i, p.Velocity.X)
		}
		prevX = p.Position.X
		prevSpeed = p.Speed()
	}

	if p.Speed() != 0 {
		t.Errorf("Speed() after 1s of stop = %v, expected 0", p.Speed())
	}

	held := p.Position.X
	p.Update(Stop, dt, 1)
	if p.Position.X != held {
		t.Errorf("stopped paddle moved: %v -> %v", held, p.Position.X)
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	dirs := []Direction{Left, Stop, Right}

	p := newTestPaddle()
	for i := range 20000 {
		dir := dirs[rng.IntN(len(dirs))]
		mult := 0.05 + rng.Float64()*0.95
		dt := rng.Float64() * 0.5
		p.Update(dir, dt, mult)

		if p.Position.X < 0 || p.Position.X > p.BoardWidth-p.Size.X {
			t.Fatalf("tick %d: x = %v outside [0, %v]", i, p.Position.X, p.BoardWidth-p.Size.X)
		}
		if p.Position.Y != 950 {
			t.Fatalf("tick %d: y changed to %v", i, p.Position.Y)
		}
	}
}

func TestPaddleClampsAtWall(t *testing.T) {
	p := newTestPaddle()
	for range 10000 {
		p.Update(Right, 1.0/60, 1)
	}
	if p.Position.X != p.MaxX() {
		t.Errorf("Position.X = %v, expected %v", p.Position.X, p.MaxX())
	}
}
