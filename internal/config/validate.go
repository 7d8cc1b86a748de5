package config

import (
	"errors"
	"fmt"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/core"
)

// Validate reports every invalid value in the config.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Board.Width > 0, "board.width must be positive, got %v", c.Board.Width)
	check(c.Board.Height > 0, "board.height must be positive, got %v", c.Board.Height)
	check(c.Board.Columns > 0, "board.columns must be positive, got %d", c.Board.Columns)
	check(c.Board.Rows > 0, "board.rows must be positive, got %d", c.Board.Rows)
	check(len(c.Board.Palette) >= c.Board.Rows, "board.palette has %d colours for %d rows", len(c.Board.Palette), c.Board.Rows)
	for i, hex := range c.Board.Palette {
		if _, err := core.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("board.palette[%d]: %w", i, err))
		}
	}

	check(c.Physics.LevelSpeedMultiplier >= 1, "physics.level_speed_multiplier must be at least 1, got %v", c.Physics.LevelSpeedMultiplier)
	check(c.Physics.MaxSpeedFactor >= 0, "physics.max_speed_factor must not be negative, got %v", c.Physics.MaxSpeedFactor)
	if err := c.Tuning().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("physics: %w", err))
	}

	check(c.Gameplay.TickRate > 0, "gameplay.tick_rate must be positive, got %d", c.Gameplay.TickRate)
	check(c.Gameplay.TimeScale > 0, "gameplay.time_scale must be positive, got %v", c.Gameplay.TimeScale)
	check(c.Gameplay.HoldTicks >= 0, "gameplay.hold_ticks must not be negative, got %d", c.Gameplay.HoldTicks)
	check(c.Gameplay.StartLevel >= 1, "gameplay.start_level must be at least 1, got %d", c.Gameplay.StartLevel)
	check(c.Gameplay.AxisDeadzone >= 0 && c.Gameplay.AxisDeadzone < 1, "gameplay.axis_deadzone must be in [0, 1), got %v", c.Gameplay.AxisDeadzone)

	if c.Audio.Enabled {
		check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
		check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}

	return errors.Join(errs...)
}

// Tuning converts the physics section.
func (c BreakoutConfig) Tuning() breakout.Tuning {
	return breakout.Tuning{
		BallSpeed:            c.Physics.BallSpeed,
		BallLateralSpeed:     c.Physics.BallLateralSpeed,
		BallMaxVelocity:      c.Physics.BallMaxVelocity,
		PaddleAcceleration:   c.Physics.PaddleAcceleration,
		PaddleBaseSpeedRatio: c.Physics.PaddleBaseSpeedRatio,
		PaddleMaxSpeedRatio:  c.Physics.PaddleMaxSpeedRatio,
	}
}

// Palette parses the board palette.
func (c BreakoutConfig) Palette() ([]core.RGB, error) {
	out := make([]core.RGB, 0, len(c.Board.Palette))
	for i, hex := range c.Board.Palette {
		rgb, err := core.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("board.palette[%d]: %w", i, err)
		}
		out = append(out, rgb)
	}
	return out, nil
}

// BoardConfig builds the construction parameters of a new board.
func (c BreakoutConfig) BoardConfig(seed uint64) (breakout.Config, error) {
	palette, err := c.Palette()
	if err != nil {
		return breakout.Config{}, err
	}
	tuning := c.Tuning()
	return breakout.Config{
		Width:   c.Board.Width,
		Height:  c.Board.Height,
		Columns: c.Board.Columns,
		Rows:    c.Board.Rows,
		Palette: palette,
		Level:   c.Gameplay.StartLevel,
		Seed:    seed,
		Tuning:  &tuning,
	}, nil
}
