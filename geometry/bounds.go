package geometry

import "math"

// Bounds is a rectangle anchored at the origin, [0,Width) x [0,Height).
type Bounds struct {
	Width  float64
	Height float64
}

// Wrap maps a point back into the bounds so that leaving one edge re-enters
// from the opposite one.
func (b Bounds) Wrap(v Vector) Vector {
	return Vector{
		X: wrapAxis(v.X, b.Width),
		Y: wrapAxis(v.Y, b.Height),
	}
}

// Contains reports whether the point lies inside the bounds.
func (b Bounds) Contains(v Vector) bool {
	return v.X >= 0 && v.X < b.Width && v.Y >= 0 && v.Y < b.Height
}

// Center returns the middle point of the bounds
func (b Bounds) Center() Vector {
	return Vector{X: b.Width / 2, Y: b.Height / 2}
}

func wrapAxis(value, size float64) float64 {
	if size <= 0 {
		return value
	}

	value = math.Mod(value, size)
	if value < 0 {
		value += size
	}
	// -tiny + size rounds to size
	if value >= size {
		value = 0
	}

	return value
}
