package backdrop

import "github.com/phanxgames/backdrop/scene"

// CreateGraphicTexture produces a solid width×height rectangle texture. The
// rectangle's origin is cropped away, so the two position arguments are
// accepted for call-site symmetry with CreateSprite and ignored.
func CreateGraphicTexture(eng Engine, c scene.Color, _, _, width, height float64) *scene.Texture {
	return eng.SolidTexture(c, width, height)
}

// CreateSprite produces a positioned sprite with the given alpha. A nil
// texture yields a blank sprite whose texture is assigned later.
func CreateSprite(eng Engine, tex *scene.Texture, x, y, alpha float64) *scene.Node {
	s := eng.NewSprite("sprite", tex)
	s.SetPosition(x, y)
	s.Alpha = alpha
	return s
}
