// Package config provides YAML and TOML game configuration loading,
// difficulty presets and validation.
package config

// BreakoutConfig contains all configuration for a Breakout session.
type BreakoutConfig struct {
	Board    BoardConfig    `yaml:"board" toml:"board"`
	Physics  PhysicsConfig  `yaml:"physics" toml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
}

// BoardConfig defines the playfield and the block grid.
type BoardConfig struct {
	Width   float64  `yaml:"width" toml:"width"`
	Height  float64  `yaml:"height" toml:"height"`
	Columns int      `yaml:"columns" toml:"columns"`
	Rows    int      `yaml:"rows" toml:"rows"`
	Palette []string `yaml:"palette" toml:"palette"` // "#rrggbb", one per row
}

// PhysicsConfig defines ball and paddle constants.
type PhysicsConfig struct {
	BallSpeed            float64 `yaml:"ball_speed" toml:"ball_speed"`
	BallLateralSpeed     float64 `yaml:"ball_lateral_speed" toml:"ball_lateral_speed"`
	BallMaxVelocity      float64 `yaml:"ball_max_velocity" toml:"ball_max_velocity"`
	LevelSpeedMultiplier float64 `yaml:"level_speed_multiplier" toml:"level_speed_multiplier"`
	MaxSpeedFactor       float64 `yaml:"max_speed_factor" toml:"max_speed_factor"` // 0 = uncapped
	PaddleAcceleration   float64 `yaml:"paddle_acceleration" toml:"paddle_acceleration"`
	PaddleBaseSpeedRatio float64 `yaml:"paddle_base_speed_ratio" toml:"paddle_base_speed_ratio"`
	PaddleMaxSpeedRatio  float64 `yaml:"paddle_max_speed_ratio" toml:"paddle_max_speed_ratio"`
}

// GameplayConfig defines the drive loop.
type GameplayConfig struct {
	TickRate     int     `yaml:"tick_rate" toml:"tick_rate"`
	TimeScale    float64 `yaml:"time_scale" toml:"time_scale"` // simulated seconds per wall-clock second
	HoldTicks    int     `yaml:"hold_ticks" toml:"hold_ticks"` // ticks a key press keeps the paddle moving
	StartLevel   int     `yaml:"start_level" toml:"start_level"`
	AxisDeadzone float64 `yaml:"axis_deadzone" toml:"axis_deadzone"`
}

// AudioConfig defines sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0..1
	Wave       string  `yaml:"wave" toml:"wave"`     // sine, square, sawtooth, triangle, noise
}

// Dt returns the simulated time step of one tick.
func (c BreakoutConfig) Dt() float64 {
	return c.Gameplay.TimeScale / float64(c.Gameplay.TickRate)
}
