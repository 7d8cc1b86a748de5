package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KilakOriginal/breakout/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after file loading, --preset and --fps are applied.

The output can be saved to ~/.breakout/breakout.yaml (or .toml) and edited.

Examples:
  breakout config > ~/.breakout/breakout.yaml
  breakout config --preset hard --format toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fatal("%v", err)
	}
	cfg, _, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	if err := config.Encode(os.Stdout, cfg, format); err != nil {
		fatal("encoding config: %v", err)
	}
}
