package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/KilakOriginal/breakout/internal/audio"
	"github.com/KilakOriginal/breakout/internal/config"
	"github.com/KilakOriginal/breakout/internal/core"
	"github.com/KilakOriginal/breakout/internal/driver"
	"github.com/KilakOriginal/breakout/internal/render"
	"github.com/KilakOriginal/breakout/internal/storage"
)

// Options configures one interactive game.
type Options struct {
	Config  config.BreakoutConfig
	Preset  string
	Seed    uint64         // 0 means time-based
	Store   *storage.Store // nil disables high scores
	Player  audio.Player   // nil means silent
	Logger  *log.Logger    // nil means discard
	Runtime core.RuntimeConfig

	// Renderer styles the screen; nil uses the local terminal.
	Renderer *ScreenRenderer
}

// Model is the Bubble Tea model for a breakout game.
type Model struct {
	opts   Options
	drv    *driver.Driver
	screen *core.Screen
	view   *ScreenRenderer
	keys   KeyMap
	help   help.Model
	log    *log.Logger

	frame     core.InputFrame
	held      core.Action // last direction key; terminals send no key-up
	holdLeft  int         // ticks the held direction stays active
	highScore int

	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano()) //#nosec G115
	}
	if opts.Player == nil {
		opts.Player = &audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewScreenRenderer(nil)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.Gameplay.TickRate
	}

	var rec driver.ScoreRecorder
	if opts.Store != nil {
		rec = opts.Store.Recorder(opts.Preset)
	}
	drv, err := driver.NewGame(opts.Config, opts.Seed, driver.Options{
		Player:   opts.Player,
		Recorder: rec,
		Logger:   opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		opts:   opts,
		drv:    drv,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		view:   opts.Renderer,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		log:    opts.Logger,
		frame:  core.NewInputFrame(),
	}
	m.refreshHighScore()
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		// Last row holds the help bar.
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held = a
		m.holdLeft = max(m.opts.Config.Gameplay.HoldTicks, 1)
	case core.ActionMute:
		p := m.drv.Player()
		p.SetMuted(!p.Muted())
	case core.ActionPause, core.ActionRestart:
		m.frame.Set(a)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.holdLeft > 0 {
		m.frame.Set(m.held)
		m.holdLeft--
	}

	in := driver.FromFrame(m.frame, m.opts.Config.Gameplay.AxisDeadzone)
	if in.Restart {
		m.holdLeft = 0
	}
	res, err := m.drv.Step(in)
	m.frame.Clear()
	if err != nil {
		m.log.Error("simulation stopped", "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if res.Stepped && res.Over {
		m.refreshHighScore()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m *Model) refreshHighScore() {
	if m.opts.Store == nil {
		return
	}
	high, err := m.opts.Store.HighScore(m.opts.Preset)
	if err != nil {
		m.log.Warn("could not read high score", "err", err)
		return
	}
	m.highScore = high
}

// status collects the overlay state for the renderer.
func (m Model) status() render.Status {
	return render.Status{
		Paused:    m.drv.Paused(),
		Over:      m.drv.Over(),
		Muted:     m.drv.Player().Muted(),
		HighScore: max(m.highScore, 0),
		Preset:    m.opts.Preset,
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	render.Draw(m.screen, m.drv.Snapshot(), m.status())

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	render.Draw(m.screen, m.drv.Snapshot(), m.status())
	return m.view.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the error that ended the game, if any.
func (m Model) Err() error {
	return m.err
}

// Driver exposes the game driver.
func (m Model) Driver() *driver.Driver {
	return m.drv
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("tui: %w", fm.Err())
	}
	return nil
}
