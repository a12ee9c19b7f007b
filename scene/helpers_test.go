package scene

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestImage(w, h int) *ebiten.Image {
	return ebiten.NewImage(w, h)
}

// nrgbaFixture returns a small straight-alpha image for encoder tests.
func nrgbaFixture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}
