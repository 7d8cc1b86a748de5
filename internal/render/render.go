// Package render draws a breakout.Snapshot onto a core.Screen.
package render

import (
	"fmt"
	"math"

	"github.com/KilakOriginal/breakout/internal/breakout"
	"github.com/KilakOriginal/breakout/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	BallChar   = '●'
	PaddleChar = '▀'
)

// Minimum playfield size in cells.
const (
	MinFieldW = 20
	MinFieldH = 10
)

// cellAspect is the height of a terminal cell in units of its width.
const cellAspect = 2.0

var (
	BorderColor = core.Grey
	BallColor   = core.White
	PaddleColor = core.Brown
)

// Status carries session state that is not part of the board.
type Status struct {
	Paused    bool
	Over      bool
	Muted     bool
	HighScore int
	Preset    string
}

// Layout maps board pixels to screen cells.
type Layout struct {
	Field core.Rect // playfield interior in cells
	Scale float64   // board pixels per cell width
}

// Fit computes the largest playfield that fits a screen of w×h cells while
// keeping the board's aspect ratio. One row is reserved for the HUD and the
// frame takes one cell on every side. ok is false when the screen is too small.
func Fit(w, h int, boardW, boardH float64) (l Layout, ok bool) {
	availW := w - 2
	availH := h - 3
	if availW < MinFieldW || availH < MinFieldH {
		return Layout{}, false
	}

	scale := math.Max(boardW/float64(availW), boardH/(cellAspect*float64(availH)))
	fw := int(math.Ceil(boardW / scale))
	fh := int(math.Ceil(boardH / (cellAspect * scale)))
	fw, fh = min(fw, availW), min(fh, availH)

	x := 1 + (availW-fw)/2
	y := 2 + (availH-fh)/2
	return Layout{Field: core.NewRect(x, y, fw, fh), Scale: scale}, true
}

// Cell converts a board point to a screen cell.
func (l Layout) Cell(p core.Vec2) (int, int) {
	cx := l.Field.X + int(math.Floor(p.X/l.Scale))
	cy := l.Field.Y + int(math.Floor(p.Y/(cellAspect*l.Scale)))
	return core.Clamp(cx, l.Field.X, l.Field.Right()-1), core.Clamp(cy, l.Field.Y, l.Field.Bottom()-1)
}

// Draw renders the HUD, board frame, blocks, paddle, ball and any overlay.
func Draw(dst *core.Screen, snap breakout.Snapshot, st Status) {
	dst.Clear()

	l, ok := Fit(dst.Width(), dst.Height(), snap.Width, snap.Height)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinFieldW+2, MinFieldH+3))
		return
	}

	drawHUD(dst, snap, st)
	dst.DrawBoxColor(core.NewRect(l.Field.X-1, l.Field.Y-1, l.Field.W+2, l.Field.H+2), BorderColor)

	for _, b := range snap.Blocks {
		drawBlock(dst, l, b)
	}
	drawPaddle(dst, l, snap)

	bx, by := l.Cell(core.V2(snap.BallX, snap.BallY))
	dst.SetCell(bx, by, core.Cell{Rune: BallChar, Color: BallColor})

	switch {
	case st.Over:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.DisplayScore))
	case st.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func drawHUD(dst *core.Screen, snap breakout.Snapshot, st Status) {
	dst.DrawText(1, 0, fmt.Sprintf("Level: %d  Score: %d", snap.Level, snap.DisplayScore))

	right := fmt.Sprintf("Best: %d", st.HighScore)
	if st.Preset != "" {
		right = st.Preset + "  " + right
	}
	if st.Muted {
		right = "[muted]  " + right
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

func drawBlock(dst *core.Screen, l Layout, b breakout.BlockState) {
	x0, y0 := l.Cell(core.V2(b.X, b.Y))
	x1, y1 := l.Cell(core.V2(b.X+b.Size, b.Y+b.Size))
	// Leave the right and bottom edge empty so adjacent blocks stay distinct.
	if x1-x0 >= 2 {
		x1--
	}
	if y1-y0 >= 2 {
		y1--
	}
	w := max(x1-x0, 1)
	h := max(y1-y0, 1)
	dst.FillRect(core.NewRect(x0, y0, w, h), core.Cell{Rune: BlockChar, Color: core.RGB{R: b.R, G: b.G, B: b.B}})
}

func drawPaddle(dst *core.Screen, l Layout, snap breakout.Snapshot) {
	x0, y := l.Cell(core.V2(snap.PaddleX, snap.PaddleY))
	x1, _ := l.Cell(core.V2(snap.PaddleX+snap.PaddleW, snap.PaddleY))
	for x := x0; x <= x1; x++ {
		dst.SetCell(x, y, core.Cell{Rune: PaddleChar, Color: PaddleColor})
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
