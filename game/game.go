package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meghashyamc/spacerocks/assets"
	"github.com/meghashyamc/spacerocks/config"
	"github.com/meghashyamc/spacerocks/logger"
	"github.com/meghashyamc/spacerocks/simulation"
)

type Game struct {
	cfg           *config.Config
	assets        *assets.Assets
	world         *simulation.World
	logger        logger.Logger
	showColliders bool
	lastStatus    simulation.Status
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.New(cfg.GetLogLevel())

	sprites, err := assets.Load()
	if err != nil {
		log.Error("failed to load assets", "err", err)
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	world, err := newWorld(cfg, sprites, log)
	if err != nil {
		log.Error("failed to create world", "err", err)
		return nil, err
	}

	g := &Game{
		cfg:           cfg,
		assets:        sprites,
		world:         world,
		logger:        log,
		showColliders: cfg.GetShowColliders(),
		lastStatus:    world.Status(),
	}

	g.logger.Info("game initialized", "ticks_per_second", cfg.GetTicksPerSecond(), "asteroids", len(world.Asteroids()))
	return g, nil
}

func newWorld(cfg *config.Config, sprites *assets.Assets, log logger.Logger) (*simulation.World, error) {
	radii := make(map[string]float64)
	for _, name := range []string{assets.NameSpaceship, assets.NameAsteroid, assets.NameBullet} {
		sprite, err := sprites.Sprite(name)
		if err != nil {
			return nil, err
		}
		radii[name] = sprite.HalfWidth
	}

	seed := cfg.GetSeed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("seeding world", "seed", seed)

	return simulation.NewWorld(simulation.Options{
		ShipRadius:     radii[assets.NameSpaceship],
		AsteroidRadius: radii[assets.NameAsteroid],
		BulletRadius:   radii[assets.NameBullet],
		Rand:           rand.New(rand.NewSource(seed)),
		Logger:         log,
	})
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	err := ebiten.RunGame(g)
	g.logger.Info("game stopped", "tick", g.world.Tick(), "result", g.world.Status().String())
	return err
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(g.cfg.GetTicksPerSecond())
}

func (g *Game) Update() error {
	in, quit := readInput()
	if quit {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	g.world.Step(in)

	if status := g.world.Status(); status != g.lastStatus {
		g.logger.Debug("round state changed", "from", g.lastStatus.String(), "to", status.String(), "message", g.world.Message())
		g.lastStatus = status
	}

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	bounds := g.world.Bounds()
	return int(bounds.Width), int(bounds.Height)
}
