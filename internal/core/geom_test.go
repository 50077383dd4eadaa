package core

import (
	"math"
	"testing"
)

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     Vec2
		wantOK bool
		want   Vec2
	}{
		{"axis x", V(5, 0), true, V(1, 0)},
		{"axis y negative", V(0, -3), true, V(0, -1)},
		{"3-4-5", V(3, 4), true, V(0.6, 0.8)},
		{"zero", V(0, 0), false, V(0, 0)},
		{"nan", V(math.NaN(), 1), false, V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.in.Normalize()
			if ok != tc.wantOK {
				t.Fatalf("Normalize() ok = %v, expected %v", ok, tc.wantOK)
			}
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)

	if got := b.Sub(a); got != V(3, 4) {
		t.Errorf("Sub() = %v, expected (3, 4)", got)
	}
	if got := a.Add(b); got != V(5, 8) {
		t.Errorf("Add() = %v, expected (5, 8)", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale() = %v, expected (2, 4)", got)
	}
	if got := Dist(a, b); got != 5 {
		t.Errorf("Dist() = %f, expected 5", got)
	}
	if !V(0, 0).IsZero() || V(0, 1).IsZero() {
		t.Error("IsZero() reported the wrong result")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
