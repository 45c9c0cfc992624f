package simulation

import (
	"fmt"
	"math/rand"

	"github.com/meghashyamc/spacerocks/geometry"
)

// AsteroidSize is the tier of an asteroid, large ones split into smaller ones.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

const (
	asteroidMinSpeed = 1
	asteroidMaxSpeed = 3
)

// Radius of each tier relative to a large asteroid.
var asteroidScales = map[AsteroidSize]float64{
	AsteroidSmall:  0.25,
	AsteroidMedium: 0.5,
	AsteroidLarge:  1.0,
}

// AsteroidScale returns the radius multiplier of a tier. Sizes outside 1..3
// are a programming error.
func AsteroidScale(size AsteroidSize) float64 {
	scale, ok := asteroidScales[size]
	if !ok {
		panic(fmt.Sprintf("simulation: invalid asteroid size %d", size))
	}
	return scale
}

type Asteroid struct {
	body
	size       AsteroidSize
	baseRadius float64 // radius of a large asteroid
}

// NewAsteroid creates an asteroid of the given tier drifting in a random
// direction at a random whole speed between 1 and 3.
func NewAsteroid(position geometry.Vector, size AsteroidSize, baseRadius float64, rng *rand.Rand) *Asteroid {
	return &Asteroid{
		body:       newBody(position, randomVelocity(rng, asteroidMinSpeed, asteroidMaxSpeed), baseRadius*AsteroidScale(size)),
		size:       size,
		baseRadius: baseRadius,
	}
}

func (a *Asteroid) Size() AsteroidSize {
	return a.size
}

func (a *Asteroid) Move(bounds geometry.Bounds) {
	a.moveWrapped(bounds)
}

// Split returns the fragments left behind when the asteroid is destroyed:
// two asteroids one tier smaller at the same position, or none for the
// smallest tier. The asteroid itself is not removed from anywhere.
func (a *Asteroid) Split(rng *rand.Rand) []*Asteroid {
	if a.size <= AsteroidSmall {
		return nil
	}

	childSize := a.size - 1
	return []*Asteroid{
		NewAsteroid(a.position, childSize, a.baseRadius, rng),
		NewAsteroid(a.position, childSize, a.baseRadius, rng),
	}
}

func randomVelocity(rng *rand.Rand, minSpeed, maxSpeed int) geometry.Vector {
	speed := rng.Intn(maxSpeed-minSpeed+1) + minSpeed
	angle := rng.Intn(360)
	return geometry.Vector{X: float64(speed), Y: 0}.Rotate(float64(angle))
}
