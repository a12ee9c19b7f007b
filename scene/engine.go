package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Engine is the explicit context handed to code that builds and animates
// scene content. It bundles node and texture factories, the asset registry,
// the tween scheduler and the current display size. There is no global
// engine; create one with NewEngine and pass it around.
type Engine struct {
	Assets *Assets
	Tweens *Tweener

	faceSource *text.GoTextFaceSource
	solids     solidCache

	windowW, windowH int
	screenSize       func() (int, int)
}

// NewEngine creates an engine with an empty asset registry and scheduler.
func NewEngine() *Engine {
	return &Engine{
		Assets: NewAssets(),
		Tweens: NewTweener(),
		solids: make(solidCache),
	}
}

// SetWindowSize records the outside size of the game window. Run calls this
// from Layout every frame.
func (e *Engine) SetWindowSize(width, height int) {
	e.windowW, e.windowH = width, height
}

// WindowSize returns the last recorded window size (0, 0 before the first layout).
func (e *Engine) WindowSize() (width, height int) {
	return e.windowW, e.windowH
}

// SetScreenSizeFunc overrides how the physical screen size is obtained.
func (e *Engine) SetScreenSizeFunc(fn func() (int, int)) {
	e.screenSize = fn
}

// ScreenSize returns the size of the monitor the window is on.
func (e *Engine) ScreenSize() (width, height int) {
	if e.screenSize != nil {
		return e.screenSize()
	}
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0
	}
	return m.Size()
}

// SetFaceSource replaces the font used by NewText. The default is Go Regular.
func (e *Engine) SetFaceSource(src *text.GoTextFaceSource) {
	e.faceSource = src
}

// NewContainer creates a container node.
func (e *Engine) NewContainer(name string) *Node {
	return NewContainer(name)
}

// NewBatch creates a container capped at capacity children.
func (e *Engine) NewBatch(name string, capacity int) *Node {
	return NewBatch(name, capacity)
}

// NewSprite creates a sprite node; tex may be nil.
func (e *Engine) NewSprite(name string, tex *Texture) *Node {
	return NewSprite(name, tex)
}

// NewText creates a text node set in the engine's font.
func (e *Engine) NewText(name, content string, style TextStyle) *Node {
	src := e.faceSource
	if src == nil {
		src = ensureDefaultFaceSource()
	}
	return NewText(name, newTextBlock(src, content, style))
}

// SolidTexture returns a width×height texture filled with c. Textures are
// cached per color and whole-pixel size.
func (e *Engine) SolidTexture(c Color, width, height float64) *Texture {
	return e.solids.get(c, width, height)
}

// SubTexture returns the part of tex covered by r.
func (e *Engine) SubTexture(tex *Texture, r Rect) *Texture {
	return tex.Sub(r)
}

// Texture looks up a registered asset.
func (e *Engine) Texture(id string) (*Texture, bool) {
	return e.Assets.Texture(id)
}

// TextureIndex returns the registration index of an asset, or -1.
func (e *Engine) TextureIndex(id string) int {
	return e.Assets.Index(id)
}

// Tween schedules t on the engine's tweener.
func (e *Engine) Tween(t *Tween) *Tween {
	return e.Tweens.Add(t)
}

// NextTag returns a fresh tween group tag.
func (e *Engine) NextTag() uint64 {
	return e.Tweens.NextTag()
}

// CancelTag cancels every running tween in the group.
func (e *Engine) CancelTag(tag uint64) int {
	return e.Tweens.CancelTag(tag)
}

// Update advances the engine clock by dt seconds.
func (e *Engine) Update(dt float32) {
	e.Tweens.Update(dt)
}
