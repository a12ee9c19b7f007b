package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay is the debug-mode panel showing FPS, TPS and running tweens.
// The text is re-rendered into its own image about twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float32
}

func (o *fpsOverlay) update(dt float32, tweens int) {
	o.elapsed += dt
	if o.img != nil && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0

	if o.img == nil {
		// 120x48 fits three DebugPrint lines
		o.img = ebiten.NewImage(120, 48)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ntweens: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), tweens))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}
