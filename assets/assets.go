package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/meghashyamc/spacerocks/simulation"
)

const (
	NameSpaceship  = "spaceship"
	NameAsteroid   = "asteroid"
	NameBullet     = "bullet"
	NameBackground = "space"
)

const messageFontSize = 32

//go:embed sprites/*.png
var spriteFS embed.FS

// Sprite is a loaded image together with the extents the game derives from it.
type Sprite struct {
	Image      *ebiten.Image
	HalfWidth  float64
	HalfHeight float64
}

func newSprite(img *ebiten.Image) *Sprite {
	bounds := img.Bounds()
	return &Sprite{
		Image:      img,
		HalfWidth:  float64(bounds.Dx()) / 2,
		HalfHeight: float64(bounds.Dy()) / 2,
	}
}

type Assets struct {
	sprites       map[string]*Sprite
	asteroidTiers map[simulation.AsteroidSize]*Sprite
	MessageFont   *text.GoTextFace
}

// Load decodes every embedded sprite and the message font.
func Load() (*Assets, error) {
	a := &Assets{
		sprites:       make(map[string]*Sprite),
		asteroidTiers: make(map[simulation.AsteroidSize]*Sprite),
	}

	for _, name := range []string{NameSpaceship, NameAsteroid, NameBullet, NameBackground} {
		img, err := loadSprite(name)
		if err != nil {
			return nil, err
		}
		a.sprites[name] = newSprite(img)
	}

	asteroid := a.sprites[NameAsteroid].Image
	for _, size := range []simulation.AsteroidSize{simulation.AsteroidLarge, simulation.AsteroidMedium, simulation.AsteroidSmall} {
		scale := simulation.AsteroidScale(size)
		if scale == 1 {
			a.asteroidTiers[size] = a.sprites[NameAsteroid]
			continue
		}
		a.asteroidTiers[size] = newSprite(scaleImage(asteroid, scale))
	}

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load message font: %w", err)
	}
	a.MessageFont = &text.GoTextFace{
		Source: fontSource,
		Size:   messageFontSize,
	}

	return a, nil
}

func (a *Assets) Sprite(name string) (*Sprite, error) {
	sprite, ok := a.sprites[name]
	if !ok {
		return nil, fmt.Errorf("unknown sprite %q", name)
	}
	return sprite, nil
}

// AsteroidSprite returns the asteroid image scaled for the given tier.
func (a *Assets) AsteroidSprite(size simulation.AsteroidSize) *Sprite {
	return a.asteroidTiers[size]
}

func loadSprite(name string) (*ebiten.Image, error) {
	data, err := spriteFS.ReadFile(fmt.Sprintf("sprites/%s.png", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite %q: %w", name, err)
	}
	return loadPNG(name, data)
}

func loadPNG(name string, data []byte) (*ebiten.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %q: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func scaleImage(img *ebiten.Image, scale float64) *ebiten.Image {
	bounds := img.Bounds()
	newWidth := int(float64(bounds.Dx()) * scale)
	newHeight := int(float64(bounds.Dy()) * scale)

	scaledImg := ebiten.NewImage(newWidth, newHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	scaledImg.DrawImage(img, op)

	return scaledImg
}
