package core

import (
	"fmt"
	"strings"
)

// RGB is an opaque 24-bit colour. The zero value means "terminal default".
type RGB struct {
	R, G, B uint8
}

// Named colours used by the board and renderer.
var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Grey   = RGB{128, 128, 128}
	Brown  = RGB{165, 105, 60}
	Red    = RGB{220, 50, 47}
	Orange = RGB{240, 140, 30}
	Yellow = RGB{235, 205, 40}
	Green  = RGB{80, 190, 80}
	Blue   = RGB{50, 120, 220}
	Purple = RGB{150, 80, 200}
)

// DefaultPalette holds one colour per block row, top row first.
func DefaultPalette() []RGB {
	return []RGB{Red, Orange, Yellow, Green, Blue, Purple}
}

// IsZero reports whether c is the terminal-default colour.
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	var c RGB
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return c, fmt.Errorf("invalid colour %q: expected 6 hex digits", s)
	}
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}
