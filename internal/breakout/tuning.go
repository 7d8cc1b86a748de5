package breakout

import (
	"fmt"
	"math"
)

// Layout constants of the block grid.
const (
	// TopSpace is the number of empty block rows above the grid.
	TopSpace = 2
	// BlockAreaRatio is the share of the board height the grid may occupy.
	BlockAreaRatio = 0.25
)

// Tuning holds the physics constants of a board.
type Tuning struct {
	BallSpeed        float64 // initial upward speed of a served ball
	BallLateralSpeed float64 // initial horizontal speed, sign picked at random
	BallMaxVelocity  float64 // per-axis speed cap applied on wall and block bounces

	PaddleAcceleration   float64 // exponential growth factor per second; decel is this^1.5
	PaddleBaseSpeedRatio float64 // minimum moving speed as a fraction of board width
	PaddleMaxSpeedRatio  float64 // maximum speed as a fraction of board width
}

// DefaultTuning returns the classic physics constants.
func DefaultTuning() Tuning {
	return Tuning{
		BallSpeed:            30,
		BallLateralSpeed:     5,
		BallMaxVelocity:      35,
		PaddleAcceleration:   1.5,
		PaddleBaseSpeedRatio: 0.02,
		PaddleMaxSpeedRatio:  0.08,
	}
}

// Validate reports the first non-positive or non-finite value.
func (t Tuning) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"ball_speed", t.BallSpeed},
		{"ball_max_velocity", t.BallMaxVelocity},
		{"paddle_acceleration", t.PaddleAcceleration},
		{"paddle_base_speed_ratio", t.PaddleBaseSpeedRatio},
		{"paddle_max_speed_ratio", t.PaddleMaxSpeedRatio},
	}
	for _, f := range fields {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s = %v: %w", f.name, f.v, ErrInvalidTuning)
		}
	}
	if t.BallLateralSpeed < 0 || math.IsNaN(t.BallLateralSpeed) || math.IsInf(t.BallLateralSpeed, 0) {
		return fmt.Errorf("ball_lateral_speed = %v: %w", t.BallLateralSpeed, ErrInvalidTuning)
	}
	if t.PaddleBaseSpeedRatio > t.PaddleMaxSpeedRatio {
		return fmt.Errorf("paddle_base_speed_ratio %v exceeds paddle_max_speed_ratio %v: %w",
			t.PaddleBaseSpeedRatio, t.PaddleMaxSpeedRatio, ErrInvalidTuning)
	}
	return nil
}
