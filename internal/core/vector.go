package core

import (
	"errors"
	"fmt"
	"math"
)

// Vec2 is an immutable 2D float vector. Every method returns a new value.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Negate returns -a.
func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Abs returns the component-wise absolute value.
func (a Vec2) Abs() Vec2 {
	return Vec2{math.Abs(a.X), math.Abs(a.Y)}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the Euclidean length.
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Vector returns the components as a general Vector.
func (a Vec2) Vector() Vector {
	return Vector{a.X, a.Y}
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", a.X, a.Y)
}

// ErrDimensionMismatch is returned when two vectors of different arity are combined.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// Vector is a general N-dimensional float vector.
// Binary operations reject operands of different length instead of
// truncating or padding.
type Vector []float64

// Dim returns the number of components.
func (v Vector) Dim() int {
	return len(v)
}

func (v Vector) check(op string, o Vector) error {
	if len(v) != len(o) {
		return fmt.Errorf("%s %d and %d components: %w", op, len(v), len(o), ErrDimensionMismatch)
	}
	return nil
}

// Add returns the component-wise sum.
func (v Vector) Add(o Vector) (Vector, error) {
	if err := v.check("add", o); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out, nil
}

// Sub returns the component-wise difference.
func (v Vector) Sub(o Vector) (Vector, error) {
	if err := v.check("sub", o); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out, nil
}

// Dot returns the sum of component products.
func (v Vector) Dot(o Vector) (float64, error) {
	if err := v.check("dot", o); err != nil {
		return 0, err
	}
	var sum float64
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum, nil
}

// Div returns the sum of component quotients v[i]/o[i].
func (v Vector) Div(o Vector) (float64, error) {
	if err := v.check("div", o); err != nil {
		return 0, err
	}
	var sum float64
	for i := range v {
		sum += v[i] / o[i]
	}
	return sum, nil
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Norm returns the p-norm of v. p = math.Inf(1) yields the max-norm.
func (v Vector) Norm(p float64) float64 {
	if math.IsInf(p, 1) {
		var m float64
		for _, c := range v {
			m = math.Max(m, math.Abs(c))
		}
		return m
	}
	var sum float64
	for _, c := range v {
		sum += math.Pow(math.Abs(c), p)
	}
	return math.Pow(sum, 1/p)
}

// Vec2 converts a two-component vector to Vec2.
func (v Vector) Vec2() (Vec2, error) {
	if len(v) != 2 {
		return Vec2{}, fmt.Errorf("vec2 from %d components: %w", len(v), ErrDimensionMismatch)
	}
	return Vec2{v[0], v[1]}, nil
}
