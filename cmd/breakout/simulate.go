package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/config"
	"github.com/KilakOriginal/breakout/internal/driver"
)

var flagTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal",
	Long: `Play a game with the built-in autopilot and print a summary.

The run stops at game over or after --ticks ticks. With a fixed --seed the
summary, including the state hash, is reproducible.

Examples:
  breakout simulate
  breakout simulate --ticks 20000 --seed 7 --preset hard
  breakout simulate --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	Seed         uint64
	Ticks        uint64
	Over         bool
	Level        int
	DisplayScore int
	BlocksLeft   int
	Hash         uint64
	Counts       map[breakout.Event]int
}

// simulate runs the autopilot for at most maxTicks ticks.
func simulate(cfg config.BreakoutConfig, seed uint64, maxTicks int, logger *log.Logger) (simSummary, error) {
	drv, err := driver.NewGame(cfg, seed, driver.Options{Logger: logger})
	if err != nil {
		return simSummary{}, err
	}

	for range maxTicks {
		if _, err := drv.Step(drv.Autopilot()); err != nil {
			return simSummary{}, err
		}
		if drv.Over() {
			break
		}
	}

	snap := drv.Snapshot()
	return simSummary{
		Seed:         seed,
		Ticks:        drv.Tick(),
		Over:         drv.Over(),
		Level:        snap.Level,
		DisplayScore: snap.DisplayScore,
		BlocksLeft:   len(snap.Blocks),
		Hash:         snap.Hash(),
		Counts:       drv.Counts(),
	}, nil
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	cfg, preset, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //#nosec G115
	}

	logger.Debug("simulating", "preset", preset, "seed", seed, "ticks", flagTicks)
	sum, err := simulate(cfg, seed, flagTicks, logger)
	if err != nil {
		fatal("simulation failed: %v", err)
	}
	printSummary(os.Stdout, preset, sum)
}

func printSummary(w io.Writer, preset config.DifficultyPreset, s simSummary) {
	state := "running"
	if s.Over {
		state = "game over"
	}
	fmt.Fprintf(w, "Preset:      %s\n", preset)
	fmt.Fprintf(w, "Seed:        %d\n", s.Seed)
	fmt.Fprintf(w, "Ticks:       %d (%s)\n", s.Ticks, state)
	fmt.Fprintf(w, "Level:       %d\n", s.Level)
	fmt.Fprintf(w, "Score:       %d\n", s.DisplayScore)
	fmt.Fprintf(w, "Blocks left: %d\n", s.BlocksLeft)
	fmt.Fprintln(w)
	for _, ev := range []breakout.Event{breakout.EventBlockHit, breakout.EventPaddleHit, breakout.EventLevelClear, breakout.EventGameOver} {
		fmt.Fprintf(w, "  %-12s %d\n", ev, s.Counts[ev])
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "State hash:  %016x\n", s.Hash)
}
