package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b Vector) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestBounds_Wrap(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}

	tests := []struct {
		name     string
		position Vector
		expected Vector
	}{
		{name: "inside", position: Vector{X: 400, Y: 300}, expected: Vector{X: 400, Y: 300}},
		{name: "origin", position: Vector{X: 0, Y: 0}, expected: Vector{X: 0, Y: 0}},
		{name: "right_edge", position: Vector{X: 800, Y: 10}, expected: Vector{X: 0, Y: 10}},
		{name: "bottom_edge", position: Vector{X: 10, Y: 600}, expected: Vector{X: 10, Y: 0}},
		{name: "past_right", position: Vector{X: 801.5, Y: 10}, expected: Vector{X: 1.5, Y: 10}},
		{name: "negative_x", position: Vector{X: -1, Y: 10}, expected: Vector{X: 799, Y: 10}},
		{name: "negative_y", position: Vector{X: 10, Y: -2.5}, expected: Vector{X: 10, Y: 597.5}},
		{name: "many_widths_away", position: Vector{X: -2401, Y: 1805}, expected: Vector{X: 799, Y: 5}},
		{name: "tiny_negative", position: Vector{X: -1e-18, Y: 5}, expected: Vector{X: 0, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bounds.Wrap(tt.position)
			if !approxEqual(got, tt.expected) {
				t.Errorf("Wrap(%v) = %v, expected %v", tt.position, got, tt.expected)
			}
			if !bounds.Contains(got) {
				t.Errorf("Wrap(%v) = %v is outside the bounds", tt.position, got)
			}
			if again := bounds.Wrap(got); again != got {
				t.Errorf("Wrap is not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestBounds_Contains(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}

	tests := []struct {
		name     string
		position Vector
		expected bool
	}{
		{name: "center", position: Vector{X: 400, Y: 300}, expected: true},
		{name: "origin", position: Vector{X: 0, Y: 0}, expected: true},
		{name: "width_excluded", position: Vector{X: 800, Y: 300}, expected: false},
		{name: "height_excluded", position: Vector{X: 400, Y: 600}, expected: false},
		{name: "negative", position: Vector{X: -0.1, Y: 300}, expected: false},
		{name: "above_top", position: Vector{X: 400, Y: -3}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounds.Contains(tt.position); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.position, got, tt.expected)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		c1       Vector
		r1       float64
		c2       Vector
		r2       float64
		expected bool
	}{
		{name: "touching", c1: Vector{X: 0, Y: 0}, r1: 10, c2: Vector{X: 30, Y: 0}, r2: 20, expected: false},
		{name: "just_inside", c1: Vector{X: 0, Y: 0}, r1: 10, c2: Vector{X: 30 - 1e-9, Y: 0}, r2: 20, expected: true},
		{name: "apart", c1: Vector{X: 0, Y: 0}, r1: 5, c2: Vector{X: 15, Y: 0}, r2: 5, expected: false},
		{name: "same_center", c1: Vector{X: 3, Y: 3}, r1: 1, c2: Vector{X: 3, Y: 3}, r2: 1, expected: true},
		{name: "diagonal", c1: Vector{X: 0, Y: 0}, r1: 3, c2: Vector{X: 3, Y: 4}, r2: 2.5, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.c1, tt.r1, tt.c2, tt.r2); got != tt.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tt.expected)
			}
			if got := CirclesOverlap(tt.c2, tt.r2, tt.c1, tt.r1); got != tt.expected {
				t.Errorf("CirclesOverlap() swapped = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVector_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		degrees  float64
		expected Vector
	}{
		{name: "quarter_clockwise", degrees: 90, expected: Vector{X: 1, Y: 0}},
		{name: "quarter_counter_clockwise", degrees: -90, expected: Vector{X: -1, Y: 0}},
		{name: "half_turn", degrees: 180, expected: Vector{X: 0, Y: 1}},
		{name: "full_turn", degrees: 360, expected: Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Up.Rotate(tt.degrees); !approxEqual(got, tt.expected) {
				t.Errorf("Up.Rotate(%v) = %v, expected %v", tt.degrees, got, tt.expected)
			}
		})
	}
}

func TestVector_SignedAngleTo(t *testing.T) {
	right := Vector{X: 1, Y: 0}
	if got := Up.SignedAngleTo(right); math.Abs(got-math.Pi/2) > epsilon {
		t.Errorf("Up.SignedAngleTo(right) = %v, expected %v", got, math.Pi/2)
	}
	left := Vector{X: -1, Y: 0}
	if got := Up.SignedAngleTo(left); math.Abs(got+math.Pi/2) > epsilon {
		t.Errorf("Up.SignedAngleTo(left) = %v, expected %v", got, -math.Pi/2)
	}
	if got := Up.SignedAngleTo(Vector{}); got != 0 {
		t.Errorf("angle to zero vector = %v, expected 0", got)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	a := Vector{X: 3, Y: 4}
	b := Vector{X: 1, Y: -2}

	if got := a.Add(b); got != (Vector{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vector{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(0.5); got != (Vector{X: 1.5, Y: 2}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v", got)
	}
	if got := a.DistanceTo(b); math.Abs(got-math.Sqrt(40)) > epsilon {
		t.Errorf("DistanceTo = %v", got)
	}
	if got := (Vector{}).Normalize(); got != (Vector{}) {
		t.Errorf("Normalize of zero vector = %v", got)
	}
}
