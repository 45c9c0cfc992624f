// Package simulation holds the fixed-step game rules: motion, collisions,
// asteroid fragmentation and the round outcome. It does no rendering and no I/O.
package simulation

import (
	"fmt"

	"github.com/meghashyamc/spacerocks/geometry"
)

// Collider is anything with a circular collision boundary.
type Collider interface {
	Position() geometry.Vector
	Radius() float64
}

// body carries the state every moving entity shares.
type body struct {
	position geometry.Vector
	velocity geometry.Vector
	radius   float64
}

func newBody(position, velocity geometry.Vector, radius float64) body {
	if radius <= 0 {
		panic(fmt.Sprintf("simulation: radius must be positive, got %v", radius))
	}
	return body{
		position: position,
		velocity: velocity,
		radius:   radius,
	}
}

func (b *body) Position() geometry.Vector {
	return b.position
}

func (b *body) Velocity() geometry.Vector {
	return b.velocity
}

func (b *body) Radius() float64 {
	return b.radius
}

// CollidesWith reports whether the two collision circles overlap.
func (b *body) CollidesWith(other Collider) bool {
	return geometry.CirclesOverlap(b.position, b.radius, other.Position(), other.Radius())
}

func (b *body) moveWrapped(bounds geometry.Bounds) {
	b.position = bounds.Wrap(b.position.Add(b.velocity))
}

func (b *body) moveFree() {
	b.position = b.position.Add(b.velocity)
}
