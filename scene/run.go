package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	Debug     bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	return g.scene.Update(float32(1.0 / float64(ebiten.TPS())))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout reports the outside size to the engine so layout code always sees
// the live window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.engine.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives s until the window closes or the update hook
// returns an error. ebiten.Termination is treated as a clean exit.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("scene: RunConfig needs a positive Width and Height")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	s.SetDebugMode(cfg.Debug)
	s.engine.SetWindowSize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{scene: s})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
