package simulation

import (
	"slices"
)

// Input is the set of player intents sampled for one tick.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Shoot       bool // edge triggered by the input source
}

// pending holds entities created during a tick. They join the world at the
// end of the tick so nothing created this tick is moved or hit this tick.
type pending struct {
	asteroids   []*Asteroid
	projectiles []*Projectile
}

// Step advances the world by one tick.
func (w *World) Step(in Input) {
	w.tick++

	var spawned pending
	w.applyInput(in, &spawned)
	w.moveAll()
	w.resolveShipCollisions()
	w.resolveProjectileHits(&spawned)
	w.cullProjectiles()

	w.asteroids = append(w.asteroids, spawned.asteroids...)
	w.projectiles = append(w.projectiles, spawned.projectiles...)

	if w.ship != nil && len(w.asteroids) == 0 {
		w.finish(StatusWon, MessageWon)
	}
}

func (w *World) applyInput(in Input, spawned *pending) {
	if w.ship == nil {
		return
	}

	if in.RotateRight {
		w.ship.Rotate(true)
	} else if in.RotateLeft {
		w.ship.Rotate(false)
	}

	if in.Thrust {
		w.ship.Accelerate()
	}

	if in.Shoot {
		projectile := w.ship.Shoot()
		spawned.projectiles = append(spawned.projectiles, projectile)
		w.logger.Debug("projectile fired", "position", projectile.Position(), "velocity", projectile.Velocity())
	}
}

func (w *World) moveAll() {
	for _, asteroid := range w.asteroids {
		asteroid.Move(w.bounds)
	}
	for _, projectile := range w.projectiles {
		projectile.Move()
	}
	if w.ship != nil {
		w.ship.Move(w.bounds)
	}
}

func (w *World) resolveShipCollisions() {
	if w.ship == nil {
		return
	}

	for _, asteroid := range w.asteroids {
		if asteroid.CollidesWith(w.ship) {
			w.logger.Debug("ship destroyed", "position", w.ship.Position(), "asteroid", asteroid.Position())
			w.ship = nil
			w.finish(StatusLost, MessageLost)
			return
		}
	}
}

// resolveProjectileHits lets every projectile destroy at most one asteroid
// and every asteroid be destroyed at most once.
func (w *World) resolveProjectileHits(spawned *pending) {
	if len(w.projectiles) == 0 || len(w.asteroids) == 0 {
		return
	}

	destroyed := make([]bool, len(w.asteroids))
	survivors := make([]*Projectile, 0, len(w.projectiles))

	for _, projectile := range w.projectiles {
		hit := false
		for i, asteroid := range w.asteroids {
			if destroyed[i] || !asteroid.CollidesWith(projectile) {
				continue
			}

			destroyed[i] = true
			children := asteroid.Split(w.rng)
			spawned.asteroids = append(spawned.asteroids, children...)
			w.logger.Debug("asteroid destroyed", "size", int(asteroid.Size()), "position", asteroid.Position(), "fragments", len(children))
			hit = true
			break
		}
		if !hit {
			survivors = append(survivors, projectile)
		}
	}

	remaining := make([]*Asteroid, 0, len(w.asteroids))
	for i, asteroid := range w.asteroids {
		if !destroyed[i] {
			remaining = append(remaining, asteroid)
		}
	}

	w.asteroids = remaining
	w.projectiles = survivors
}

func (w *World) cullProjectiles() {
	w.projectiles = slices.DeleteFunc(w.projectiles, func(p *Projectile) bool {
		return p.IsOutside(w.bounds)
	})
}
