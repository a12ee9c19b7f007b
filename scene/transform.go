package scene

// Transforms are 2×3 affine matrices stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//
// Nodes only translate and scale, so b and c stay zero for anything built
// from node fields, but composition keeps the general form.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localMatrix scales by (ScaleX, ScaleY) about the node origin, then moves
// it to (X, Y) in parent space.
func localMatrix(n *Node) [6]float64 {
	return [6]float64{n.ScaleX, 0, 0, n.ScaleY, n.X, n.Y}
}

// compose returns outer∘inner: inner is applied first.
func compose(outer, inner [6]float64) [6]float64 {
	a, b, c, d := outer[0], outer[1], outer[2], outer[3]
	return [6]float64{
		a*inner[0] + c*inner[1],
		b*inner[0] + d*inner[1],
		a*inner[2] + c*inner[3],
		b*inner[2] + d*inner[3],
		a*inner[4] + c*inner[5] + outer[4],
		b*inner[4] + d*inner[5] + outer[5],
	}
}

func apply(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// refreshWorld brings n's cached world matrix and alpha up to date during a
// draw traversal. The matrix is rebuilt only when n moved or its parent's
// matrix changed (force); the result says whether it was rebuilt so the
// children can follow. Alpha is always refreshed since tweens write
// Node.Alpha directly.
func refreshWorld(n *Node, parent [6]float64, parentAlpha float64, force bool) bool {
	rebuilt := force || n.transformDirty
	if rebuilt {
		n.worldTransform = compose(parent, localMatrix(n))
		n.transformDirty = false
	}
	n.worldAlpha = n.Alpha * parentAlpha
	return rebuilt
}

// SetPosition moves the node within its parent.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.transformDirty = true
}

// SetScale sets the horizontal and vertical scale factors.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.transformDirty = true
}

// SetAlpha sets the node's own opacity; children multiply it in.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}

// MarkDirty forces the world matrix to be rebuilt on the next draw. Needed
// after writing X, Y, ScaleX or ScaleY directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// LocalToWorld maps a point from n's coordinate space to the scene root's.
// It walks the ancestors and does not depend on a previous draw.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	m := identityTransform
	for p := n; p != nil; p = p.Parent {
		m = compose(localMatrix(p), m)
	}
	return apply(m, lx, ly)
}

// WorldAlpha is the effective opacity of n: its alpha times every ancestor's.
func (n *Node) WorldAlpha() float64 {
	a := n.Alpha
	for p := n.Parent; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}
