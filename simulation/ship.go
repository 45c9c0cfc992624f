package simulation

import (
	"github.com/meghashyamc/spacerocks/geometry"
)

const (
	shipManeuverability = 3.0  // degrees per tick
	shipAcceleration    = 0.25 // units per tick squared
	BulletSpeed         = 3.0  // units per tick
)

type Ship struct {
	body
	heading      geometry.Vector
	bulletRadius float64
}

// NewShip creates a resting ship facing up.
func NewShip(position geometry.Vector, radius, bulletRadius float64) *Ship {
	return &Ship{
		body:         newBody(position, geometry.Vector{}, radius),
		heading:      geometry.Up,
		bulletRadius: bulletRadius,
	}
}

// Heading is the unit vector the ship faces, independent of where it drifts.
func (s *Ship) Heading() geometry.Vector {
	return s.heading
}

func (s *Ship) Rotate(clockwise bool) {
	angle := shipManeuverability
	if !clockwise {
		angle = -angle
	}
	s.heading = s.heading.Rotate(angle).Normalize()
}

func (s *Ship) Accelerate() {
	s.velocity = s.velocity.Add(s.heading.Scale(shipAcceleration))
}

func (s *Ship) Move(bounds geometry.Bounds) {
	s.moveWrapped(bounds)
}

// Shoot returns a new projectile leaving the ship's center along the
// heading. The ship's own velocity is not added.
func (s *Ship) Shoot() *Projectile {
	return NewProjectile(s.position, s.heading.Scale(BulletSpeed), s.bulletRadius)
}
