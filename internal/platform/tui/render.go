package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/KilakOriginal/breakout/internal/core"
)

// ScreenRenderer converts Screen buffers to styled strings. Styles are
// cached per colour. It is safe for concurrent use.
type ScreenRenderer struct {
	r *lipgloss.Renderer

	mu     sync.Mutex
	styles map[core.RGB]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// process default, which is wrong for SSH sessions.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{r: r, styles: make(map[core.RGB]lipgloss.Style)}
}

func (sr *ScreenRenderer) style(c core.RGB) lipgloss.Style {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if st, ok := sr.styles[c]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if !c.IsZero() {
		st = st.Foreground(lipgloss.Color(c.Hex()))
	}
	sr.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := s.RowCells(y)
		x := 0
		for x < len(row) {
			startColor := row[x].Color

			var run strings.Builder
			for x < len(row) && row[x].Color == startColor {
				run.WriteRune(row[x].Rune)
				x++
			}

			if startColor.IsZero() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
