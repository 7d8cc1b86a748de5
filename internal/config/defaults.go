package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded configuration, used when even
// the embedded YAML cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Board: BoardConfig{
			Width:   800,
			Height:  1000,
			Columns: 15,
			Rows:    6,
			Palette: []string{"#dc322f", "#f08c1e", "#ebcd28", "#50be50", "#3278dc", "#9650c8"},
		},
		Physics: PhysicsConfig{
			BallSpeed:            30,
			BallLateralSpeed:     5,
			BallMaxVelocity:      35,
			LevelSpeedMultiplier: 1.3,
			MaxSpeedFactor:       4,
			PaddleAcceleration:   1.5,
			PaddleBaseSpeedRatio: 0.02,
			PaddleMaxSpeedRatio:  0.08,
		},
		Gameplay: GameplayConfig{
			TickRate:     60,
			TimeScale:    8,
			HoldTicks:    20,
			StartLevel:   1,
			AxisDeadzone: 0.1,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
			Wave:       "sine",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
