package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown config format %q (want yaml or toml)", s)
	}
}

// FormatFromPath picks the format from a file extension; anything but .toml is YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data into cfg. Fields absent from data keep their current values.
func Decode(data []byte, format Format, cfg *BreakoutConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode writes cfg to w.
func Encode(w io.Writer, cfg BreakoutConfig, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Load loads the Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.{yaml,toml} -> ./configs/breakout.{yaml,toml} -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it sets.
func Load(customPath string) (BreakoutConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Decode(data, FormatFromPath(customPath), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{}
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "breakout.yaml"), filepath.Join(dir, "breakout.toml"))
	}
	candidates = append(candidates, filepath.Join("configs", "breakout.yaml"), filepath.Join("configs", "breakout.toml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		loaded := cfg
		if err := Decode(data, FormatFromPath(path), &loaded); err == nil {
			return loaded, nil
		}
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() BreakoutConfig {
	var cfg BreakoutConfig
	if err := yaml.NewDecoder(bytes.NewReader(defaultBreakoutYAML)).Decode(&cfg); err != nil {
		return DefaultBreakoutConfig()
	}
	return cfg
}

// userConfigDir returns ~/.breakout, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout")
}
