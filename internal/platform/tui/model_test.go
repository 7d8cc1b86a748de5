package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilakOriginal/breakout/internal/config"
	"github.com/KilakOriginal/breakout/internal/core"
	"github.com/KilakOriginal/breakout/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	cfg.Audio.Enabled = false
	m, err := NewModel(Options{
		Config:  cfg,
		Preset:  "normal",
		Seed:    1,
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 40},
	})
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("d"), core.ActionRight},
		{runes("p"), core.ActionPause},
		{runes("r"), core.ActionRestart},
		{runes("m"), core.ActionMute},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.Action(tt.msg), "key %q", tt.msg.String())
	}
}

func TestModelHeldDirectionMovesPaddle(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	assert.Negative(t, m.Driver().Snapshot().PaddleVX)

	// The latch expires after HoldTicks without another key event.
	for range m.opts.Config.Gameplay.HoldTicks + 200 {
		m = update(t, m, TickMsg{})
		if m.Driver().Over() {
			break
		}
	}
	assert.Zero(t, m.holdLeft)
}

func TestModelPauseAndMute(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg{})
	assert.True(t, m.Driver().Paused())
	tick := m.Driver().Tick()

	m = update(t, m, TickMsg{})
	assert.Equal(t, tick, m.Driver().Tick(), "paused game must not advance")

	m = update(t, m, runes("m"))
	assert.True(t, m.Driver().Player().Muted())
	assert.Contains(t, m.View(), "[muted]")
	assert.Contains(t, m.View(), "PAUSED")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

func TestModelViewShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.SaveScore("normal", 1234, 3)
	require.NoError(t, err)

	m := newTestModel(t, store)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 45})

	view := m.View()
	assert.Contains(t, view, "Best: 1234")
	assert.Contains(t, view, "Level: 1")
	assert.Equal(t, 45, strings.Count(view, "\n")+1, "game rows plus help bar fill the window")
}

func TestScreenRendererGroupsRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab")
	s.FillRect(core.NewRect(2, 0, 3, 1), core.Cell{Rune: '█', Color: core.Red})

	out := NewScreenRenderer(nil).Render(s)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "███")
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, config.DifficultyNormal, 80, 24)
	_, ok := m.Selected()
	assert.False(t, ok)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	preset, ok := next.(MenuModel).Selected()
	require.True(t, ok)
	assert.Equal(t, config.DifficultyHard, preset)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Audio.Enabled = false
	var sm tea.Model = NewSessionModel(Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60},
	})

	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, sm.(SessionModel).game, "enter starts a game")
	assert.Equal(t, "normal", sm.(SessionModel).game.opts.Preset)

	sm, _ = sm.Update(runes("q"))
	assert.Nil(t, sm.(SessionModel).game, "q returns to the menu")
	assert.Contains(t, sm.View(), "Select a difficulty")
}
