package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KilakOriginal/breakout/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets and the physics values each one sets.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulty presets:")
	fmt.Println()

	fmt.Printf("  %-7s  %-5s  %-5s  %-6s  %s\n", "Preset", "Ball", "Cap", "Level", "Description")
	fmt.Printf("  %-7s  %-5s  %-5s  %-6s  %s\n", "------", "----", "---", "-----", "-----------")

	for _, p := range config.Presets() {
		cfg := config.DefaultBreakoutConfig()
		config.ApplyPreset(&cfg, p.Preset)
		fmt.Printf("  %-7s  %-5g  %-5g  x%-5g  %s\n",
			p.Preset, cfg.Physics.BallSpeed, cfg.Physics.BallMaxVelocity, cfg.Physics.LevelSpeedMultiplier, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --preset <name>' to play a preset.")
}
