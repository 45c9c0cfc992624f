package geometry

import (
	"math"
)

// DistanceTo returns the euclidean distance between two points
func (v Vector) DistanceTo(other Vector) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}

// CirclesOverlap reports whether two circles intersect. Circles that only
// touch (centers exactly r1+r2 apart) do not overlap.
func CirclesOverlap(c1 Vector, r1 float64, c2 Vector, r2 float64) bool {
	return c1.DistanceTo(c2) < r1+r2
}
