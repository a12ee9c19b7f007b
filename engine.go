package backdrop

import "github.com/phanxgames/backdrop/scene"

// Engine is the rendering and animation capability set the view is built on.
// *scene.Engine implements it; tests may wrap one to fake display sizes.
type Engine interface {
	// WindowSize is the inner size of the window, 0 when unknown.
	WindowSize() (width, height int)
	// ScreenSize is the size of the physical screen, used when the window
	// size is unknown.
	ScreenSize() (width, height int)

	NewContainer(name string) *scene.Node
	NewBatch(name string, capacity int) *scene.Node
	NewSprite(name string, tex *scene.Texture) *scene.Node
	NewText(name, content string, style scene.TextStyle) *scene.Node

	SolidTexture(c scene.Color, width, height float64) *scene.Texture
	SubTexture(tex *scene.Texture, r scene.Rect) *scene.Texture

	// Texture resolves a loaded background by id.
	Texture(id string) (*scene.Texture, bool)
	// TextureIndex returns the registration index of id, or -1.
	TextureIndex(id string) int

	Tween(t *scene.Tween) *scene.Tween
	NextTag() uint64
	CancelTag(tag uint64) int
}

var _ Engine = (*scene.Engine)(nil)
