package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/spacerocks/assets"
	"github.com/meghashyamc/spacerocks/geometry"
	"github.com/meghashyamc/spacerocks/simulation"
)

var messageColor = color.RGBA{255, 215, 0, 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if background, err := g.assets.Sprite(assets.NameBackground); err == nil {
		screen.DrawImage(background.Image, &ebiten.DrawImageOptions{})
	}

	for _, asteroid := range g.world.Asteroids() {
		drawSprite(screen, g.assets.AsteroidSprite(asteroid.Size()), asteroid.Position(), 0)
	}

	if bullet, err := g.assets.Sprite(assets.NameBullet); err == nil {
		for _, projectile := range g.world.Projectiles() {
			drawSprite(screen, bullet, projectile.Position(), 0)
		}
	}

	if ship := g.world.Ship(); ship != nil {
		if sprite, err := g.assets.Sprite(assets.NameSpaceship); err == nil {
			// sprites are drawn facing up
			drawSprite(screen, sprite, ship.Position(), geometry.Up.SignedAngleTo(ship.Heading()))
		}
	}

	if g.showColliders {
		g.drawColliders(screen)
	}

	if message := g.world.Message(); message != "" {
		g.drawMessage(screen, message)
	}
}

// drawSprite draws the sprite centered on position, i.e. anchored at
// position minus its half extent, turned clockwise by angle radians.
func drawSprite(screen *ebiten.Image, sprite *assets.Sprite, position geometry.Vector, angle float64) {
	if sprite == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sprite.HalfWidth, -sprite.HalfHeight)
	if angle != 0 {
		op.GeoM.Rotate(angle)
		op.Filter = ebiten.FilterLinear
	}
	op.GeoM.Translate(position.X, position.Y)

	screen.DrawImage(sprite.Image, op)
}

func (g *Game) drawMessage(screen *ebiten.Image, message string) {
	width, height := text.Measure(message, g.assets.MessageFont, 0)
	bounds := g.world.Bounds()

	op := &text.DrawOptions{}
	op.GeoM.Translate(bounds.Width/2-width/2, bounds.Height/2-height/2)
	op.ColorScale.ScaleWithColor(messageColor)
	text.Draw(screen, message, g.assets.MessageFont, op)
}

func (g *Game) drawColliders(screen *ebiten.Image) {
	// Ship in red
	if ship := g.world.Ship(); ship != nil {
		strokeCollider(screen, ship, color.RGBA{255, 0, 0, 255})
	}

	// Asteroids in green
	for _, asteroid := range g.world.Asteroids() {
		strokeCollider(screen, asteroid, color.RGBA{0, 255, 0, 255})
	}

	// Projectiles in blue
	for _, projectile := range g.world.Projectiles() {
		strokeCollider(screen, projectile, color.RGBA{0, 128, 255, 255})
	}
}

func strokeCollider(screen *ebiten.Image, c simulation.Collider, col color.Color) {
	position := c.Position()
	vector.StrokeCircle(screen, float32(position.X), float32(position.Y), float32(c.Radius()), 1, col, true)
}
