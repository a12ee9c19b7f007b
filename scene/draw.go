package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawer carries per-frame draw state through a traversal.
type drawer struct {
	target  *ebiten.Image
	op      ebiten.DrawImageOptions
	textOp  text.DrawOptions
	drawn   int
	visited int
	skipped int
}

// traverse walks the node tree depth-first, updating world transforms and
// drawing sprites and text. Subtrees that are invisible or fully transparent
// are skipped since alpha multiplies down the tree.
func (d *drawer) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}
	d.visited++
	recompute := refreshWorld(n, parentTransform, parentAlpha, parentRecomputed)
	if n.worldAlpha <= 0 {
		d.skipped++
		return
	}

	switch n.Type {
	case NodeTypeSprite:
		d.drawSprite(n)
	case NodeTypeText:
		d.drawText(n)
	}

	for _, child := range n.children {
		d.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

func (d *drawer) drawSprite(n *Node) {
	if n.Texture == nil {
		return
	}
	img := n.Texture.Image()
	if img == nil {
		return
	}

	op := &d.op
	op.GeoM.Reset()
	w, h := n.Size()
	if tw, th := n.Texture.Width(), n.Texture.Height(); tw != w || th != h {
		op.GeoM.Scale(w/tw, h/th)
	}
	op.GeoM.Concat(geoM(n.worldTransform))

	op.ColorScale.Reset()
	a := float32(n.Color.A * n.worldAlpha)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)

	d.target.DrawImage(img, op)
	d.drawn++
}

func (d *drawer) drawText(n *Node) {
	tb := n.TextBlock
	if tb == nil || tb.Face == nil || tb.Content == "" {
		return
	}
	w, h := tb.Measure()

	op := &d.textOp
	op.GeoM.Reset()
	op.GeoM.Translate(-w*tb.AnchorX, -h*tb.AnchorY)
	op.GeoM.Concat(geoM(n.worldTransform))
	op.LineSpacing = tb.Face.Size

	op.ColorScale.Reset()
	a := float32(tb.Color.A * n.worldAlpha)
	op.ColorScale.Scale(float32(tb.Color.R)*a, float32(tb.Color.G)*a, float32(tb.Color.B)*a, a)

	text.Draw(d.target, tb.Content, tb.Face, op)
	d.drawn++
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
