package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// Up points towards the top of the screen (y grows downward).
var Up = Vector{X: 0, Y: -1}

// Dot calculates the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Rotate turns the vector by the given angle in degrees.
// With screen coordinates a positive angle is clockwise.
func (v Vector) Rotate(degrees float64) Vector {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// SignedAngleTo returns the angle in radians that rotates v onto other,
// positive when the rotation is clockwise on screen.
func (v Vector) SignedAngleTo(other Vector) float64 {
	if v.Magnitude() == 0 || other.Magnitude() == 0 {
		return 0
	}
	cross := v.X*other.Y - v.Y*other.X
	return math.Atan2(cross, v.Dot(other))
}
