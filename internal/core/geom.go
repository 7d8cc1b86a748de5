// Package core provides fundamental value types shared by the simulation,
// renderer and platform layers. It has no external dependencies so that the
// game logic built on it stays pure and testable.
package core

// Rect is an integer rectangle in screen cells, used by the Screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world (pixel) units.
// Position is the top-left corner; Y grows downward.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt builds a box from a top-left corner and a size vector.
func BoxAt(pos, size Vec2) Box {
	return Box{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// BoxAround builds the square box of half-extent r centered on c.
func BoxAround(c Vec2, r float64) Box {
	return Box{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Intersects reports whether the two boxes overlap.
// Touching edges count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.X > o.Right() || o.X > b.Right() {
		return false
	}
	if b.Y > o.Bottom() || o.Y > b.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point p lies inside the box (edges inclusive).
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
