package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/meghashyamc/spacerocks/geometry"
	"github.com/meghashyamc/spacerocks/logger"
)

const (
	WorldWidth  = 800
	WorldHeight = 600

	InitialAsteroids    = 6
	MinAsteroidDistance = 250.0

	maxSpawnAttempts = 10000
)

const (
	MessageWon  = "You won!"
	MessageLost = "You lost!"
)

type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// Options configures a new world. Radii normally come from sprite sizes.
type Options struct {
	Width  float64 // defaults to WorldWidth
	Height float64 // defaults to WorldHeight

	ShipRadius     float64
	AsteroidRadius float64 // radius of a large asteroid
	BulletRadius   float64

	AsteroidCount int        // defaults to InitialAsteroids
	Rand          *rand.Rand // defaults to a clock seeded source
	Logger        logger.Logger
}

// World is the complete state of one round.
type World struct {
	bounds         geometry.Bounds
	ship           *Ship
	asteroids      []*Asteroid
	projectiles    []*Projectile
	status         Status
	message        string
	asteroidRadius float64
	rng            *rand.Rand
	logger         logger.Logger
	tick           uint64
}

// NewWorld places the ship in the middle of the world and surrounds it with
// large asteroids, none of them closer than MinAsteroidDistance.
func NewWorld(opts Options) (*World, error) {
	if opts.Width == 0 {
		opts.Width = WorldWidth
	}
	if opts.Height == 0 {
		opts.Height = WorldHeight
	}
	if opts.AsteroidCount == 0 {
		opts.AsteroidCount = InitialAsteroids
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid world options: %w", err)
	}

	w := &World{
		bounds:         geometry.Bounds{Width: opts.Width, Height: opts.Height},
		status:         StatusPlaying,
		asteroidRadius: opts.AsteroidRadius,
		rng:            opts.Rand,
		logger:         opts.Logger,
	}
	w.ship = NewShip(w.bounds.Center(), opts.ShipRadius, opts.BulletRadius)

	if err := w.spawnAsteroids(opts.AsteroidCount); err != nil {
		return nil, err
	}

	w.logger.Info("world created", "width", opts.Width, "height", opts.Height, "asteroids", len(w.asteroids))
	return w, nil
}

func (o Options) validate() error {
	if o.Width < 1 || o.Height < 1 {
		return fmt.Errorf("world size %vx%v", o.Width, o.Height)
	}
	if o.ShipRadius <= 0 || o.AsteroidRadius <= 0 || o.BulletRadius <= 0 {
		return errors.New("ship, asteroid and bullet radius must be positive")
	}
	if o.AsteroidCount < 0 {
		return fmt.Errorf("asteroid count %d", o.AsteroidCount)
	}
	return nil
}

func (w *World) spawnAsteroids(count int) error {
	shipPosition := w.ship.Position()
	for i := 0; i < count; i++ {
		position, err := w.safeSpawnPosition(shipPosition)
		if err != nil {
			return err
		}
		asteroid := NewAsteroid(position, AsteroidLarge, w.asteroidRadius, w.rng)
		w.asteroids = append(w.asteroids, asteroid)
		w.logger.Debug("asteroid spawned", "position", position, "velocity", asteroid.Velocity())
	}
	return nil
}

func (w *World) safeSpawnPosition(avoid geometry.Vector) (geometry.Vector, error) {
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		position := geometry.Vector{
			X: float64(w.rng.Intn(int(w.bounds.Width))),
			Y: float64(w.rng.Intn(int(w.bounds.Height))),
		}
		if position.DistanceTo(avoid) > MinAsteroidDistance {
			return position, nil
		}
	}
	return geometry.Vector{}, fmt.Errorf("no asteroid position at least %v from %v in a %vx%v world",
		MinAsteroidDistance, avoid, w.bounds.Width, w.bounds.Height)
}

func (w *World) Bounds() geometry.Bounds {
	return w.bounds
}

// Ship returns nil once the ship has been destroyed.
func (w *World) Ship() *Ship {
	return w.ship
}

// Asteroids returns the live asteroids. The slice must not be modified.
func (w *World) Asteroids() []*Asteroid {
	return w.asteroids
}

// Projectiles returns the live projectiles. The slice must not be modified.
func (w *World) Projectiles() []*Projectile {
	return w.projectiles
}

func (w *World) Status() Status {
	return w.status
}

// Message is empty while playing and holds the outcome afterwards.
func (w *World) Message() string {
	return w.message
}

func (w *World) Tick() uint64 {
	return w.tick
}

// finish records the outcome of the round. The first outcome sticks.
func (w *World) finish(status Status, message string) {
	if w.status != StatusPlaying {
		return
	}
	w.status = status
	w.message = message
	w.logger.Info("round over", "result", status.String(), "tick", w.tick)
}
