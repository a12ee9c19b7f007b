package scene

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default tint (no color modification).
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
)

// RGB converts a 0xRRGGBB hex value into an opaque Color.
func RGB(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// Hex returns the color as 0xRRGGBB, ignoring alpha.
func (c Color) Hex() uint32 {
	r := uint32(math.Round(clamp01(c.R) * 255))
	g := uint32(math.Round(clamp01(c.G) * 255))
	b := uint32(math.Round(clamp01(c.B) * 255))
	return r<<16 | g<<8 | b
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlapping area of r and other. The result has zero
// width or height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeBatch                     // group node with a fixed child budget
	NodeTypeSprite                    // renders a Texture scaled to its display size
	NodeTypeText                      // renders a TextBlock
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeBatch:
		return "batch"
	case NodeTypeSprite:
		return "sprite"
	case NodeTypeText:
		return "text"
	default:
		return "unknown"
	}
}
