package simulation

import (
	"github.com/meghashyamc/spacerocks/geometry"
)

// Projectile flies in a straight line and is dropped once it leaves the
// world, it never wraps around.
type Projectile struct {
	body
}

func NewProjectile(position, velocity geometry.Vector, radius float64) *Projectile {
	return &Projectile{
		body: newBody(position, velocity, radius),
	}
}

func (p *Projectile) Move() {
	p.moveFree()
}

func (p *Projectile) IsOutside(bounds geometry.Bounds) bool {
	return !bounds.Contains(p.position)
}
