package scene

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TextStyle describes how a text node is set.
type TextStyle struct {
	Size    float64 // font size in pixels
	Color   Color
	AnchorX float64 // 0 = left, 0.5 = center, 1 = right
	AnchorY float64 // 0 = top, 0.5 = middle, 1 = bottom
}

// TextBlock holds text content and its face.
type TextBlock struct {
	Content string
	Face    *text.GoTextFace
	Color   Color
	AnchorX float64
	AnchorY float64
}

// Measure returns the laid-out width and height of the content.
func (tb *TextBlock) Measure() (width, height float64) {
	if tb.Face == nil || tb.Content == "" {
		return 0, 0
	}
	return text.Measure(tb.Content, tb.Face, tb.Face.Size)
}

// LoadFaceSource parses TTF/OTF data into a face source that can back any
// number of TextStyle sizes.
func LoadFaceSource(ttfData []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scene: failed to parse font: %w", err)
	}
	return src, nil
}

// defaultFaceSource lazily loads Go Regular (no sync.Once; the scene is single-threaded).
var defaultFaceSource *text.GoTextFaceSource

func ensureDefaultFaceSource() *text.GoTextFaceSource {
	if defaultFaceSource == nil {
		src, err := LoadFaceSource(goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultFaceSource = src
	}
	return defaultFaceSource
}

// newTextBlock builds a block for content using src at the style's size.
func newTextBlock(src *text.GoTextFaceSource, content string, style TextStyle) *TextBlock {
	size := style.Size
	if size <= 0 {
		size = 16
	}
	c := style.Color
	if c == (Color{}) {
		c = ColorWhite
	}
	return &TextBlock{
		Content: content,
		Face:    &text.GoTextFace{Source: src, Size: size},
		Color:   c,
		AnchorX: style.AnchorX,
		AnchorY: style.AnchorY,
	}
}
