// breakout is a terminal Breakout game with a headless simulator and an SSH
// server for remote play.
//
// Usage:
//
//	breakout play              - Play in the terminal
//	breakout simulate          - Run the autopilot headless and print a summary
//	breakout scores [preset]   - Show high scores
//	breakout serve             - Start SSH server for remote play
//	breakout presets           - List difficulty presets
//	breakout config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.breakout/scores.db)
//	--config <path>      - Load a YAML or TOML config file
//	--preset <name>      - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KilakOriginal/breakout/internal/config"
	"github.com/KilakOriginal/breakout/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     uint64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break blocks in your terminal",
	Long: `Breakout is the classic brick breaker for the terminal.

Available commands:
  play      - Play in the terminal
  simulate  - Run the autopilot without a terminal
  scores    - View high scores
  serve     - Start SSH server for remote play
  presets   - Show difficulty presets
  config    - Print the effective configuration

Examples:
  breakout play
  breakout play --preset hard
  breakout simulate --ticks 5000 --seed 42
  breakout serve --ssh :2222
  breakout scores normal`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = gameplay.tick_rate from config)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	}), nil
}

// loadConfig loads the config file, applies --preset and --fps and validates
// the result.
func loadConfig() (config.BreakoutConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Gameplay.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, preset, nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
