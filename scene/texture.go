package scene

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a rectangular frame within a source image. Sub-textures share
// their parent's image; only the frame differs.
type Texture struct {
	source *ebiten.Image
	frame  Rect
	sub    *ebiten.Image // cached SubImage for frame
}

// NewTexture wraps an entire image as a texture.
func NewTexture(img *ebiten.Image) *Texture {
	b := img.Bounds()
	return &Texture{
		source: img,
		frame:  Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())},
	}
}

// Frame returns the texture's rectangle within its source image.
func (t *Texture) Frame() Rect {
	return t.frame
}

// Width returns the frame width in pixels.
func (t *Texture) Width() float64 {
	return t.frame.Width
}

// Height returns the frame height in pixels.
func (t *Texture) Height() float64 {
	return t.frame.Height
}

// Source returns the full source image the texture was cut from.
func (t *Texture) Source() *ebiten.Image {
	return t.source
}

// Sub returns a texture covering r, given in this texture's local
// coordinates. The rectangle is clipped to the frame; a rectangle entirely
// outside yields an empty texture that draws nothing.
func (t *Texture) Sub(r Rect) *Texture {
	abs := Rect{X: t.frame.X + r.X, Y: t.frame.Y + r.Y, Width: r.Width, Height: r.Height}
	return &Texture{source: t.source, frame: abs.Intersect(t.frame)}
}

// Image returns the drawable image for the frame, or nil for empty frames.
func (t *Texture) Image() *ebiten.Image {
	if t.frame.Empty() || t.source == nil {
		return nil
	}
	if t.sub == nil {
		rect := image.Rect(
			int(t.frame.X), int(t.frame.Y),
			int(t.frame.X+t.frame.Width), int(t.frame.Y+t.frame.Height),
		)
		if rect == t.source.Bounds() {
			t.sub = t.source
		} else {
			t.sub = t.source.SubImage(rect).(*ebiten.Image)
		}
	}
	return t.sub
}

// solidKey identifies a cached solid-color texture.
type solidKey struct {
	rgba colorRGBA
	w, h int
}

// solidCache holds generated solid textures (no sync; the scene is single-threaded).
type solidCache map[solidKey]*Texture

// newSolidTexture fills a new w×h image with c. The size is rounded up to
// whole pixels with a minimum of 1×1.
func newSolidTexture(c Color, width, height float64) (*Texture, solidKey) {
	w := max(int(math.Ceil(width)), 1)
	h := max(int(math.Ceil(height)), 1)
	key := solidKey{rgba: c.toRGBA(), w: w, h: h}
	img := ebiten.NewImage(w, h)
	img.Fill(key.rgba)
	return NewTexture(img), key
}

func (c solidCache) get(col Color, width, height float64) *Texture {
	w := max(int(math.Ceil(width)), 1)
	h := max(int(math.Ceil(height)), 1)
	if tex, ok := c[solidKey{rgba: col.toRGBA(), w: w, h: h}]; ok {
		return tex
	}
	tex, key := newSolidTexture(col, width, height)
	c[key] = tex
	return tex
}
