package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	if got := a.Add(b); got != V2(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V2(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V2(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := b.Abs(); got != V2(1, 2) {
		t.Errorf("Abs() = %v, expected (1, 2)", got)
	}

	// Operands are untouched
	if a != V2(3, 4) || b != V2(1, -2) {
		t.Error("Vec2 operations should not mutate operands")
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V2(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize().Len() = %v, expected 1", n.Len())
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Normalize() of zero = %v, expected zero", z)
	}
}

func TestVectorDimensionMismatch(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{1, 2}

	if _, err := a.Add(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add() error = %v, expected ErrDimensionMismatch", err)
	}
	if _, err := a.Sub(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Sub() error = %v, expected ErrDimensionMismatch", err)
	}
	if _, err := a.Dot(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Dot() error = %v, expected ErrDimensionMismatch", err)
	}
	if _, err := a.Div(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Div() error = %v, expected ErrDimensionMismatch", err)
	}
	if _, err := a.Vec2(); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Vec2() error = %v, expected ErrDimensionMismatch", err)
	}
}

func TestVectorOperations(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	for i, expected := range []float64{5, 7, 9} {
		if sum[i] != expected {
			t.Errorf("Add()[%d] = %v, expected %v", i, sum[i], expected)
		}
	}

	dot, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot() unexpected error: %v", err)
	}
	if dot != 32 {
		t.Errorf("Dot() = %v, expected 32", dot)
	}

	if got := (Vector{3, -4}).Norm(2); got != 5 {
		t.Errorf("Norm(2) = %v, expected 5", got)
	}
	if got := (Vector{3, -4}).Norm(math.Inf(1)); got != 4 {
		t.Errorf("Norm(inf) = %v, expected 4", got)
	}

	v, err := V2(1, 2).Vector().Vec2()
	if err != nil || v != V2(1, 2) {
		t.Errorf("Vec2 round trip = %v, %v", v, err)
	}
}
