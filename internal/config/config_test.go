package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/core"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	assert.Equal(t, DefaultBreakoutConfig(), embeddedDefault())
	assert.NoError(t, DefaultBreakoutConfig().Validate())
}

func TestLoadCustomYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  columns: 10\ngameplay:\n  time_scale: 4\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Board.Columns)
	assert.Equal(t, 4.0, cfg.Gameplay.TimeScale)
	assert.Equal(t, 6, cfg.Board.Rows, "unset fields keep their defaults")
	assert.Equal(t, 1.3, cfg.Physics.LevelSpeedMultiplier)
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[board]\nrows = 3\npalette = [\"#ff0000\", \"#00ff00\", \"#0000ff\"]\n\n[audio]\nenabled = false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Board.Rows)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, cfg.Board.Palette)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 15, cfg.Board.Columns)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [unclosed"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			cfg.Board.Columns = 12

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, cfg, format))

			var decoded BreakoutConfig
			require.NoError(t, Decode(buf.Bytes(), format, &decoded))
			assert.Equal(t, cfg, decoded)
		})
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFromPath("a/b/breakout.TOML"))
	assert.Equal(t, FormatYAML, FormatFromPath("breakout.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("breakout"))

	f, err := ParseFormat("toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero columns", func(c *BreakoutConfig) { c.Board.Columns = 0 }},
		{"short palette", func(c *BreakoutConfig) { c.Board.Palette = c.Board.Palette[:2] }},
		{"bad colour", func(c *BreakoutConfig) { c.Board.Palette[0] = "red" }},
		{"zero tick rate", func(c *BreakoutConfig) { c.Gameplay.TickRate = 0 }},
		{"slowdown per level", func(c *BreakoutConfig) { c.Physics.LevelSpeedMultiplier = 0.5 }},
		{"zero acceleration", func(c *BreakoutConfig) { c.Physics.PaddleAcceleration = 0 }},
		{"loud", func(c *BreakoutConfig) { c.Audio.Volume = 2 }},
		{"start level zero", func(c *BreakoutConfig) { c.Gameplay.StartLevel = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestBoardConfig(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	bc, err := cfg.BoardConfig(7)
	require.NoError(t, err)

	assert.Equal(t, 800.0, bc.Width)
	assert.Equal(t, 15, bc.Columns)
	assert.Equal(t, core.DefaultPalette(), bc.Palette)
	assert.Equal(t, uint64(7), bc.Seed)
	require.NotNil(t, bc.Tuning)
	assert.Equal(t, breakout.DefaultTuning(), *bc.Tuning)

	b, err := breakout.NewBoard(bc)
	require.NoError(t, err)
	assert.Equal(t, 90, b.BlockCount())
}

func TestPresets(t *testing.T) {
	for _, info := range Presets() {
		p, err := ParsePreset(string(info.Preset))
		require.NoError(t, err)
		assert.Equal(t, info.Preset, p)

		cfg := DefaultBreakoutConfig()
		ApplyPreset(&cfg, p)
		assert.NoError(t, cfg.Validate(), "preset %s", p)
	}

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)

	cfg := DefaultBreakoutConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	assert.Equal(t, 1.0, cfg.Curve().Factor(5))
}

func TestSpeedCurve(t *testing.T) {
	c := SpeedCurve{Multiplier: 1.3, MaxFactor: 2}

	assert.Equal(t, 1.0, c.Factor(1))
	assert.InDelta(t, 1.3, c.Factor(2), 1e-12)
	assert.InDelta(t, 1.69, c.Factor(3), 1e-12)
	assert.Equal(t, 2.0, c.Factor(10))

	unbounded := SpeedCurve{Multiplier: 2}
	assert.Equal(t, 512.0, unbounded.Factor(10))
}
