package scene

import "fmt"

// nodeIDCounter is a plain counter (no atomic; the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is one element of the display tree. Containers, batches, sprites and
// text share this struct; Type says which fields matter.
type Node struct {
	ID   uint32
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	// local transform
	X, Y   float64
	ScaleX float64
	ScaleY float64

	// cached by the draw traversal
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool

	// sprites
	Texture *Texture
	Color   Color
	width   float64 // display width; 0 = texture width
	height  float64 // display height; 0 = texture height

	// batches
	Capacity int

	// text
	TextBlock *TextBlock

	disposed bool
}

// initNode assigns an id and the defaults every node type starts from.
func initNode(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	initNode(n)
	return n
}

// NewBatch creates a container that accepts at most capacity children.
// Batches hold large numbers of flat sprites and refuse to grow past their
// declared budget.
func NewBatch(name string, capacity int) *Node {
	if capacity <= 0 {
		panic("scene: batch capacity must be positive")
	}
	n := &Node{Name: name, Type: NodeTypeBatch, Capacity: capacity}
	initNode(n)
	return n
}

// NewSprite creates a sprite node. A nil texture yields a blank sprite that
// draws nothing until a texture is assigned.
func NewSprite(name string, tex *Texture) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Texture: tex}
	initNode(n)
	return n
}

// NewText creates a text node with the given content and face.
func NewText(name string, block *TextBlock) *Node {
	n := &Node{Name: name, Type: NodeTypeText, TextBlock: block}
	initNode(n)
	return n
}

// AddChild appends child, detaching it from any previous parent. It panics
// on a nil or disposed node, on a cycle, and when a batch is full.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scene: cannot add nil child")
	}
	if n.disposed || child.disposed {
		panic(fmt.Sprintf("scene: AddChild on disposed node (%q <- %q)", n.Name, child.Name))
	}
	if within(n, child) {
		panic("scene: adding child would create a cycle")
	}
	if n.Type == NodeTypeBatch && child.Parent != n && len(n.children) >= n.Capacity {
		panic(fmt.Sprintf("scene: batch %q over capacity (%d)", n.Name, n.Capacity))
	}
	if child.Parent != nil {
		child.Parent.unlink(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	invalidate(child)
}

// RemoveChild detaches child. It panics if child belongs to another node.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scene: child's parent is not this node")
	}
	n.unlink(child)
	child.Parent = nil
	invalidate(child)
}

// RemoveFromParent detaches n; orphans are left alone.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches every child, without disposing, and returns them
// in paint order.
func (n *Node) RemoveChildren() []*Node {
	removed := n.children
	for _, child := range removed {
		child.Parent = nil
		invalidate(child)
	}
	n.children = nil
	return removed
}

// DisposeChildren detaches and disposes every child of this node.
func (n *Node) DisposeChildren() {
	for _, child := range n.RemoveChildren() {
		child.dispose()
	}
}

// Children returns the children in paint order. Callers must not modify the slice.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren reports how many children n has.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the index-th child in paint order.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// IndexOf returns the position of child among this node's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// SetTexture replaces the sprite's texture. The display size is preserved, so
// a texture swap never changes how much screen space the sprite covers.
func (n *Node) SetTexture(tex *Texture) {
	n.Texture = tex
}

// SetSize sets the sprite's display size in local pixels. Zero on an axis
// means "use the texture's size".
func (n *Node) SetSize(width, height float64) {
	n.width = width
	n.height = height
}

// Size returns the display size. Axes without an explicit size fall back to
// the texture's size, or zero for blank sprites.
func (n *Node) Size() (width, height float64) {
	width, height = n.width, n.height
	if n.Texture != nil {
		if width == 0 {
			width = n.Texture.Width()
		}
		if height == 0 {
			height = n.Texture.Height()
		}
	}
	return width, height
}

// Dispose detaches n and disposes its whole subtree. Disposed nodes cannot be
// re-added, and tweens aimed at them stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Texture = nil
	n.TextBlock = nil
}

// IsDisposed reports whether Dispose has run on n or an ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// within reports whether n is root or lies somewhere below it.
func within(n, root *Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// unlink drops child from n.children, leaving child.Parent as is.
func (n *Node) unlink(child *Node) {
	i := n.IndexOf(child)
	if i < 0 {
		return
	}
	last := len(n.children) - 1
	copy(n.children[i:], n.children[i+1:])
	n.children[last] = nil
	n.children = n.children[:last]
}

// invalidate flags n and everything below it for a world-matrix rebuild.
func invalidate(n *Node) {
	n.transformDirty = true
	for _, c := range n.children {
		invalidate(c)
	}
}
