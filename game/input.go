package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/spacerocks/simulation"
)

// readInput samples the keyboard once per tick. Rotation and thrust follow
// held keys, shooting and quitting fire once per key press.
func readInput() (simulation.Input, bool) {
	quit := inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	in := simulation.Input{
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Thrust:      ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Shoot:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}

	return in, quit
}
