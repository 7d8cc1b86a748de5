package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KilakOriginal/breakout/internal/audio"
	"github.com/KilakOriginal/breakout/internal/config"
	"github.com/KilakOriginal/breakout/internal/core"
	"github.com/KilakOriginal/breakout/internal/platform/tui"
	"github.com/KilakOriginal/breakout/internal/storage"
)

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Without --preset a difficulty menu is shown first.

Controls:
  Left/A, Right/D  - Move the paddle (hold to keep moving)
  P/Esc/Space      - Pause
  R                - Restart
  M                - Mute
  Ctrl+S           - Save a text screenshot to ~/.breakout/screenshots
  Q/Ctrl+C         - Quit

Examples:
  breakout play
  breakout play --preset easy --mute
  breakout play --config ./my-breakout.toml --log-file /tmp/breakout.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fatal("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fatal("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Pick a preset interactively unless one was given.
	if flagPreset == "" {
		preset, ok := pickPreset(store, width, height)
		if !ok {
			return
		}
		flagPreset = string(preset)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	player, err := audio.New(cfg.Audio)
	if err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	defer player.Close()
	player.SetMuted(flagMute)

	logger.Info("starting game", "preset", preset, "seed", flagSeed, "tick_rate", cfg.Gameplay.TickRate)
	runErr := tui.Run(tui.Options{
		Config: cfg,
		Preset: string(preset),
		Seed:   flagSeed,
		Store:  store,
		Player: player,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Gameplay.TickRate,
			Seed:     flagSeed,
		},
	})
	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}

// pickPreset loops between the difficulty menu and the scoreboard until a
// preset is chosen or the user quits.
func pickPreset(store *storage.Store, width, height int) (config.DifficultyPreset, bool) {
	for {
		res, err := tui.RunMenu(store, config.DifficultyNormal, width, height)
		if err != nil {
			fatal("%v", err)
		}
		switch {
		case res.Quit:
			return "", false
		case res.WantsScoreboard:
			if err := tui.RunScoreboard(store, string(config.DifficultyNormal), width, height); err != nil {
				fatal("%v", err)
			}
		default:
			return res.Preset, true
		}
	}
}
