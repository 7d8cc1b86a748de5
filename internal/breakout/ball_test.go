package breakout

import (
	"math"
	"testing"

	"github.com/KilakOriginal/breakout/internal/core"
)

func TestBallUpdateIsPureTranslation(t *testing.T) {
	tests := []struct {
		name string
		vel  core.Vec2
		dt   float64
	}{
		{"up", core.V2(0, -30), 1.0 / 60},
		{"diagonal", core.V2(5, -30), 0.5},
		{"stationary", core.V2(0, 0), 1},
		{"large step", core.V2(-120, 45), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Position: core.V2(100, 200), Radius: 5, Velocity: tc.vel, MaxVelocity: 35}
			b.Update(tc.dt)

			expected := core.V2(100+tc.vel.X*tc.dt, 200+tc.vel.Y*tc.dt)
			if b.Position != expected {
				t.Errorf("Position = %v, expected %v", b.Position, expected)
			}
			if b.Velocity != tc.vel {
				t.Errorf("Velocity changed to %v, expected %v", b.Velocity, tc.vel)
			}
		})
	}
}

func TestBallBounce(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		max      float64
		expected float64
	}{
		{"positive under cap", 20, 35, -20},
		{"negative under cap", -20, 35, 20},
		{"positive over cap", 50, 35, -35},
		{"negative over cap", -50, 35, 35},
		{"at cap", 35, 35, -35},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Velocity: core.V2(tc.v, tc.v), MaxVelocity: tc.max}

			b.BounceX()
			if b.Velocity.X != tc.expected {
				t.Errorf("BounceX() vx = %v, expected %v", b.Velocity.X, tc.expected)
			}
			if b.Velocity.Y != tc.v {
				t.Errorf("BounceX() changed vy to %v", b.Velocity.Y)
			}

			b.BounceY()
			if b.Velocity.Y != tc.expected {
				t.Errorf("BounceY() vy = %v, expected %v", b.Velocity.Y, tc.expected)
			}
			if math.Abs(b.Velocity.Y) > tc.max {
				t.Errorf("BounceY() |vy| = %v exceeds max %v", math.Abs(b.Velocity.Y), tc.max)
			}
			if math.Signbit(b.Velocity.Y) == math.Signbit(tc.v) {
				t.Errorf("BounceY() did not flip sign: %v -> %v", tc.v, b.Velocity.Y)
			}
		})
	}
}
