package driver

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilakOriginal/breakout/internal/audio"
	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/config"
	"github.com/KilakOriginal/breakout/internal/core"
)

// scriptedSim replays a fixed sequence of events.
type scriptedSim struct {
	events  []breakout.Event
	level   int
	scaled  []float64
	resets  int
	updates int
}

func (s *scriptedSim) Update(breakout.Direction, float64, float64) breakout.Event {
	ev := s.events[s.updates%len(s.events)]
	s.updates++
	if ev == breakout.EventLevelClear {
		s.level++
	}
	return ev
}

func (s *scriptedSim) Reset(levelUp bool, _ int) {
	s.resets++
	if !levelUp {
		s.level = 1
	}
}

func (s *scriptedSim) ScaleBallMaxVelocity(f float64) { s.scaled = append(s.scaled, f) }
func (s *scriptedSim) Level() int                     { return s.level }
func (s *scriptedSim) DisplayScore() int              { return 100 }
func (s *scriptedSim) Snapshot() breakout.Snapshot    { return breakout.Snapshot{Level: s.level} }

// recordingPlayer remembers what it was asked to play.
type recordingPlayer struct {
	audio.Nop
	played []breakout.Event
}

func (p *recordingPlayer) Play(ev breakout.Event) { p.played = append(p.played, ev) }

func TestStepDispatchesEvents(t *testing.T) {
	sim := &scriptedSim{
		events: []breakout.Event{
			breakout.EventContinue,
			breakout.EventBlockHit,
			breakout.EventPaddleHit,
			breakout.EventLevelClear,
			breakout.EventGameOver,
		},
		level: 1,
	}
	player := &recordingPlayer{}
	var recorded [][2]int
	d := New(sim, Options{
		Curve:  config.SpeedCurve{Multiplier: 1.3},
		Player: player,
		Recorder: RecorderFunc(func(score, level int) error {
			recorded = append(recorded, [2]int{score, level})
			return nil
		}),
	})

	for range 5 {
		_, err := d.Step(Input{})
		require.NoError(t, err)
	}

	assert.True(t, d.Over())
	assert.Equal(t, uint64(5), d.Tick())
	assert.Equal(t, []breakout.Event{
		breakout.EventBlockHit,
		breakout.EventPaddleHit,
		breakout.EventLevelClear,
		breakout.EventGameOver,
	}, player.played)
	assert.Equal(t, [][2]int{{100, 2}}, recorded)
	require.Len(t, sim.scaled, 1)
	assert.InDelta(t, 1.3, sim.scaled[0], 1e-12)
	assert.Equal(t, 1, d.Counts()[breakout.EventLevelClear])

	res, err := d.Step(Input{})
	require.NoError(t, err)
	assert.False(t, res.Stepped, "no updates after game over")
	assert.Equal(t, 5, sim.updates)
}

func TestStepUnknownEventIsFatal(t *testing.T) {
	sim := &scriptedSim{events: []breakout.Event{breakout.Event(7)}, level: 1}
	d := New(sim, Options{})

	_, err := d.Step(Input{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEvent))
}

func TestPauseAndRestart(t *testing.T) {
	sim := &scriptedSim{events: []breakout.Event{breakout.EventGameOver}, level: 3}
	d := New(sim, Options{})

	res, err := d.Step(Input{Pause: true})
	require.NoError(t, err)
	assert.True(t, res.Paused)
	assert.False(t, res.Stepped)

	res, err = d.Step(Input{Pause: true})
	require.NoError(t, err)
	assert.True(t, res.Stepped)
	assert.True(t, res.Over)

	// Pause is ignored once the game is over.
	res, err = d.Step(Input{Pause: true})
	require.NoError(t, err)
	assert.False(t, res.Paused)

	sim.events = []breakout.Event{breakout.EventContinue}
	res, err = d.Step(Input{Restart: true})
	require.NoError(t, err)
	assert.True(t, res.Stepped)
	assert.False(t, res.Over)
	assert.Equal(t, 1, sim.resets)
	assert.Equal(t, 1, sim.level)
}

func TestSpeedCurveAppliedAtStart(t *testing.T) {
	sim := &scriptedSim{events: []breakout.Event{breakout.EventContinue}, level: 3}
	New(sim, Options{Curve: config.SpeedCurve{Multiplier: 2}})

	require.Len(t, sim.scaled, 1)
	assert.Equal(t, 4.0, sim.scaled[0])
}

func TestRecorderErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	sim := &scriptedSim{events: []breakout.Event{breakout.EventGameOver}, level: 1}
	d := New(sim, Options{
		Logger: log.New(&buf),
		Recorder: RecorderFunc(func(int, int) error {
			return errors.New("disk full")
		}),
	})

	_, err := d.Step(Input{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "disk full")
}

func TestAxisInput(t *testing.T) {
	tests := []struct {
		axis float64
		dir  breakout.Direction
		mult float64
	}{
		{0, breakout.Stop, 1},
		{0.05, breakout.Stop, 1},
		{-0.1, breakout.Stop, 1},
		{0.5, breakout.Right, 0.55},
		{-1, breakout.Left, 1},
		{-3, breakout.Left, 1},
		{math.NaN(), breakout.Stop, 1},
	}

	for _, tc := range tests {
		dir, mult := AxisInput(tc.axis, DefaultDeadzone)
		assert.Equal(t, tc.dir, dir, "axis %v", tc.axis)
		assert.InDelta(t, tc.mult, mult, 1e-12, "axis %v", tc.axis)
	}
}

func TestFromFrame(t *testing.T) {
	f := core.NewInputFrame()
	f.Set(core.ActionLeft)
	f.Set(core.ActionPause)
	in := FromFrame(f, DefaultDeadzone)
	assert.Equal(t, breakout.Left, in.Direction)
	assert.True(t, in.Pause)
	assert.False(t, in.Restart)

	f.Set(core.ActionRight)
	assert.Equal(t, breakout.Stop, FromFrame(f, DefaultDeadzone).Direction, "both directions cancel")

	f.Axis = 0.8
	in = FromFrame(f, DefaultDeadzone)
	assert.Equal(t, breakout.Right, in.Direction)
	assert.InDelta(t, 0.82, in.SpeedMultiplier, 1e-12)
}

func TestAutopilotPlaysRealBoard(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	bc, err := cfg.BoardConfig(1)
	require.NoError(t, err)
	board, err := breakout.NewBoard(bc)
	require.NoError(t, err)

	d := New(board, Options{Dt: cfg.Dt(), Curve: cfg.Curve()})
	for range 2000 {
		_, err := d.Step(d.Autopilot())
		require.NoError(t, err)
		if d.Over() {
			break
		}
	}
	assert.Positive(t, d.Counts()[breakout.EventPaddleHit], "autopilot should return the ball at least once")
}

func TestNewGameUsesConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Gameplay.StartLevel = 3

	d, err := NewGame(cfg, 7, Options{})
	require.NoError(t, err)

	snap := d.Snapshot()
	assert.Equal(t, 3, snap.Level)
	want := cfg.Physics.BallMaxVelocity * cfg.Curve().Factor(3)
	assert.InDelta(t, want, snap.BallMaxVelocity, 1e-9)

	cfg.Board.Palette = cfg.Board.Palette[:1]
	_, err = NewGame(cfg, 7, Options{})
	assert.Error(t, err, "palette shorter than rows")
}
