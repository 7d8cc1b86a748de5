package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/config"
)

func TestSimulateIsReproducible(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	logger := log.New(io.Discard)

	a, err := simulate(cfg, 42, 3000, logger)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(cfg, 42, 3000, logger)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a.Hash != b.Hash || a.Ticks != b.Ticks || a.DisplayScore != b.DisplayScore {
		t.Errorf("same seed gave different runs: %+v vs %+v", a, b)
	}
	if a.Ticks == 0 || a.Ticks > 3000 {
		t.Errorf("Ticks = %d, expected 1..3000", a.Ticks)
	}
	if a.Counts[breakout.EventPaddleHit] == 0 {
		t.Error("autopilot never returned the ball")
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Board.Columns = 0
	if _, err := simulate(cfg, 1, 10, log.New(io.Discard)); err == nil {
		t.Error("simulate() should fail for zero columns")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, config.DifficultyNormal, simSummary{
		Seed:   7,
		Ticks:  100,
		Over:   true,
		Level:  2,
		Hash:   0xabc,
		Counts: map[breakout.Event]int{breakout.EventBlockHit: 5},
	})

	out := buf.String()
	for _, want := range []string{"Preset:      normal", "100 (game over)", "block_hit", "0000000000000abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
