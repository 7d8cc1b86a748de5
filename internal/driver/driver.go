// Package driver runs the fixed-timestep game loop around a breakout.Board:
// it feeds input each tick and turns the returned events into side effects
// such as sounds, speed-ups, score recording and restarts.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/KilakOriginal/breakout/internal/audio"
	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/config"
)

// ErrUnknownEvent is returned when the simulation reports an event outside
// the known set. The session cannot continue after it.
var ErrUnknownEvent = errors.New("unknown event")

// Simulation is the part of *breakout.Board the driver depends on.
type Simulation interface {
	Update(dir breakout.Direction, dt, speedMultiplier float64) breakout.Event
	Reset(levelUp bool, score int)
	ScaleBallMaxVelocity(f float64)
	Level() int
	DisplayScore() int
	Snapshot() breakout.Snapshot
}

// ScoreRecorder persists the final score of a finished game.
type ScoreRecorder interface {
	RecordScore(displayScore, level int) error
}

// RecorderFunc adapts a function to ScoreRecorder.
type RecorderFunc func(displayScore, level int) error

func (f RecorderFunc) RecordScore(displayScore, level int) error { return f(displayScore, level) }

// Options configures a Driver. Zero values are replaced with defaults.
type Options struct {
	Dt       float64           // simulated seconds per tick
	Curve    config.SpeedCurve // per-level ball speed-up
	Player   audio.Player      // nil means silent
	Recorder ScoreRecorder     // nil means scores are not recorded
	Logger   *log.Logger       // nil means discard
	Deadzone float64           // analog deadzone for Autopilot
}

// Result describes one call to Step.
type Result struct {
	Tick    uint64
	Event   breakout.Event
	Stepped bool // false while paused or after game over
	Paused  bool
	Over    bool
}

// Driver owns one game session. It is not safe for concurrent use.
type Driver struct {
	sim  Simulation
	opts Options
	log  *log.Logger

	tick   uint64
	paused bool
	over   bool
	counts map[breakout.Event]int
}

// New creates a driver for sim. The ball speed cap is scaled for the
// simulation's current level.
func New(sim Simulation, opts Options) *Driver {
	if opts.Dt <= 0 {
		opts.Dt = 1.0 / 60
	}
	if opts.Player == nil {
		opts.Player = &audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Deadzone <= 0 {
		opts.Deadzone = DefaultDeadzone
	}

	d := &Driver{
		sim:    sim,
		opts:   opts,
		log:    opts.Logger,
		counts: make(map[breakout.Event]int),
	}
	d.applySpeedCurve()
	return d
}

// NewGame builds a board from cfg and wraps it in a driver whose time step,
// speed curve and deadzone come from cfg. Other options are taken from opts.
func NewGame(cfg config.BreakoutConfig, seed uint64, opts Options) (*Driver, error) {
	bc, err := cfg.BoardConfig(seed)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	board, err := breakout.NewBoard(bc)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	opts.Dt = cfg.Dt()
	opts.Curve = cfg.Curve()
	if opts.Deadzone == 0 {
		opts.Deadzone = cfg.Gameplay.AxisDeadzone
	}
	return New(board, opts), nil
}

// Step handles pause and restart requests, then advances the simulation by
// one tick unless the game is paused or over.
func (d *Driver) Step(in Input) (Result, error) {
	if in.Restart {
		d.Restart()
	}
	if in.Pause && !d.over {
		d.paused = !d.paused
		d.log.Debug("pause toggled", "paused", d.paused, "tick", d.tick)
	}

	res := Result{Tick: d.tick, Paused: d.paused, Over: d.over}
	if d.paused || d.over {
		return res, nil
	}

	ev := d.sim.Update(in.Direction, d.opts.Dt, in.SpeedMultiplier)
	d.tick++
	res.Tick = d.tick
	res.Event = ev
	res.Stepped = true

	if err := d.handle(ev); err != nil {
		return res, err
	}
	res.Over = d.over
	return res, nil
}

func (d *Driver) handle(ev breakout.Event) error {
	switch ev {
	case breakout.EventContinue:
		return nil
	case breakout.EventBlockHit, breakout.EventPaddleHit:
		d.opts.Player.Play(ev)
	case breakout.EventLevelClear:
		d.applySpeedCurve()
		d.opts.Player.Play(ev)
		d.log.Info("level cleared", "level", d.sim.Level(), "score", d.sim.DisplayScore(), "tick", d.tick)
	case breakout.EventGameOver:
		d.over = true
		d.opts.Player.Play(ev)
		d.log.Info("game over", "level", d.sim.Level(), "score", d.sim.DisplayScore(), "tick", d.tick)
		d.record()
	default:
		d.log.Error("unknown event", "code", int(ev), "tick", d.tick)
		return fmt.Errorf("driver: tick %d: %w %d", d.tick, ErrUnknownEvent, int(ev))
	}
	d.counts[ev]++
	d.log.Debug("event", "event", ev, "tick", d.tick)
	return nil
}

func (d *Driver) record() {
	if d.opts.Recorder == nil {
		return
	}
	if err := d.opts.Recorder.RecordScore(d.sim.DisplayScore(), d.sim.Level()); err != nil {
		d.log.Warn("cannot record score", "err", err)
	}
}

// applySpeedCurve scales the freshly built ball for the current level.
func (d *Driver) applySpeedCurve() {
	if f := d.opts.Curve.Factor(d.sim.Level()); f != 1 {
		d.sim.ScaleBallMaxVelocity(f)
	}
}

// Restart starts a new game at level 1 with a zero score.
func (d *Driver) Restart() {
	d.sim.Reset(false, 0)
	d.applySpeedCurve()
	d.paused = false
	d.over = false
	d.log.Debug("restart", "tick", d.tick)
}

// Autopilot returns the autopilot's input for the current state.
func (d *Driver) Autopilot() Input {
	return Autopilot(d.sim.Snapshot(), d.opts.Deadzone)
}

// SetPaused pauses or resumes the game.
func (d *Driver) SetPaused(p bool) { d.paused = p && !d.over }

// Paused reports whether the game is paused.
func (d *Driver) Paused() bool { return d.paused }

// Over reports whether the game has ended.
func (d *Driver) Over() bool { return d.over }

// Tick returns the number of simulated ticks.
func (d *Driver) Tick() uint64 { return d.tick }

// Counts returns how many times each event other than continue occurred.
func (d *Driver) Counts() map[breakout.Event]int {
	out := make(map[breakout.Event]int, len(d.counts))
	for k, v := range d.counts {
		out[k] = v
	}
	return out
}

// Snapshot returns the simulation state.
func (d *Driver) Snapshot() breakout.Snapshot { return d.sim.Snapshot() }

// Player returns the audio player.
func (d *Driver) Player() audio.Player { return d.opts.Player }
