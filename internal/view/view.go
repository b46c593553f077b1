// Package view shows a rendered navigation map in a desktop window.
package view

import (
	"github.com/hajimehoshi/ebiten/v2"

	"navmap"
	"navmap/internal/render"
)

type game struct {
	frame         *ebiten.Image
	width, height int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Show opens a window displaying the map with its validated start and goal
// markers. It blocks until the window closes or Escape/Q is pressed.
func Show(m *navmap.ObstacleMap, start, goal navmap.Point, scale int) error {
	img := render.Raster(m, start, goal, scale)
	bounds := img.Bounds()

	g := &game{
		frame:  ebiten.NewImageFromImage(img),
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}

	ebiten.SetWindowTitle("navmap")
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}
