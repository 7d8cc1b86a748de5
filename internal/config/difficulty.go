package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // no per-level speed-up
)

// PresetInfo describes a preset for listings.
type PresetInfo struct {
	Preset      DifficultyPreset
	Description string
}

// Presets returns all presets in display order.
func Presets() []PresetInfo {
	return []PresetInfo{
		{DifficultyEasy, "Slower ball, faster paddle, gentle speed-up per level"},
		{DifficultyNormal, "Classic tuning: ball speed cap x1.3 per level"},
		{DifficultyHard, "Faster ball, slower paddle, steep speed-up per level"},
		{DifficultyFixed, "Classic tuning without per-level speed-up"},
	}
}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BallSpeed = 24
		cfg.Physics.BallMaxVelocity = 30
		cfg.Physics.LevelSpeedMultiplier = 1.15
		cfg.Physics.PaddleMaxSpeedRatio = 0.1
	case DifficultyHard:
		cfg.Physics.BallSpeed = 36
		cfg.Physics.BallMaxVelocity = 42
		cfg.Physics.LevelSpeedMultiplier = 1.4
		cfg.Physics.PaddleMaxSpeedRatio = 0.07
	case DifficultyFixed:
		cfg.Physics.LevelSpeedMultiplier = 1
	}
}

// SpeedCurve computes how much faster the ball may travel on a given level.
type SpeedCurve struct {
	Multiplier float64 // growth per level
	MaxFactor  float64 // upper bound of the factor; 0 means unbounded
}

// Curve returns the per-level speed curve of the config.
func (c BreakoutConfig) Curve() SpeedCurve {
	return SpeedCurve{Multiplier: c.Physics.LevelSpeedMultiplier, MaxFactor: c.Physics.MaxSpeedFactor}
}

// Factor returns Multiplier^(level-1), clamped to MaxFactor.
func (s SpeedCurve) Factor(level int) float64 {
	if level <= 1 || s.Multiplier <= 0 {
		return 1
	}
	f := math.Pow(s.Multiplier, float64(level-1))
	if s.MaxFactor > 0 {
		f = math.Min(f, s.MaxFactor)
	}
	return f
}
