package breakout

import "github.com/KilakOriginal/breakout/internal/core"

// Block is a square brick. It never moves; it is removed when hit.
type Block struct {
	Position core.Vec2 // top-left
	Size     float64
	Colour   core.RGB
}

// Bounds returns the block's bounding box.
func (b Block) Bounds() core.Box {
	return core.Box{X: b.Position.X, Y: b.Position.Y, W: b.Size, H: b.Size}
}
