package backdrop

import (
	"fmt"

	"github.com/phanxgames/backdrop/scene"
)

// Showing tells which actor layer is in front.
type Showing int8

const (
	ShowingNone   Showing = iota // no background shown yet
	ShowingLayer1                // Actor1 is the foreground
	ShowingLayer2                // Actor2 is the foreground
)

func (s Showing) String() string {
	switch s {
	case ShowingLayer1:
		return "layer1"
	case ShowingLayer2:
		return "layer2"
	default:
		return "none"
	}
}

// View owns the backdrop's display tree. Paint order, back to front:
//
//	Render
//	├── Main
//	│   ├── Actor2   (batch)
//	│   ├── Actor1   (batch)
//	│   └── Overlay
//	└── Interact
//	    ├── Extra    (batch, flash cells)
//	    ├── Grid     (batch, reference lines)
//	    └── Text     (watermark)
type View struct {
	Render   *scene.Node
	Main     *scene.Node
	Interact *scene.Node
	Overlay  *scene.Node

	Actor1 Layer
	Actor2 Layer
	Extra  Layer

	Grid *scene.Node
	Text *scene.Node

	// Active is the foreground actor layer.
	Active Showing
	// CurrentBg is the asset index of the last requested background, -1 before any.
	CurrentBg int
	// Epoch counts layout passes. Every sprite grid carries the epoch that built it.
	Epoch uint64
	// Geometry is the layout the current sprite grids were built with.
	Geometry Geometry

	opts    options
	current *Transition
	queue   []*Transition
	shown   string
}

// BuildView creates the display tree and populates it for the current
// viewport. The returned View's Render node is ready to be added to a scene.
func BuildView(eng Engine, opts ...Option) (*View, error) {
	if eng == nil {
		return nil, ErrMissingEngine
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		Render:    eng.NewContainer("render"),
		Main:      eng.NewContainer("main"),
		Interact:  eng.NewContainer("interact"),
		Overlay:   eng.NewContainer("overlay"),
		Actor1:    Layer{Container: eng.NewBatch("actor1", SpriteBudget)},
		Actor2:    Layer{Container: eng.NewBatch("actor2", SpriteBudget)},
		Extra:     Layer{Container: eng.NewBatch("extra", SpriteBudget)},
		Grid:      eng.NewBatch("grid", SpriteBudget),
		Text:      eng.NewContainer("text"),
		CurrentBg: -1,
		opts:      o,
	}

	v.Main.AddChild(v.Actor2.Container)
	v.Main.AddChild(v.Actor1.Container)
	v.Main.AddChild(v.Overlay)

	v.Interact.AddChild(v.Extra.Container)
	v.Interact.AddChild(v.Grid)
	v.Interact.AddChild(v.Text)

	v.Render.AddChild(v.Main)
	v.Render.AddChild(v.Interact)

	if err := UpdateView(eng, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateView lays the view out again for the live viewport: it shifts the
// render layer so the border cells sit off-screen, rebuilds the three sprite
// grids with one shared geometry, and redraws the grid lines and watermark.
//
// A running transition is cancelled because its sprites are replaced. The
// background that was showing is repainted at rest on the new grid, and
// queued transitions resume. On error the view is left untouched.
func UpdateView(eng Engine, v *View) error {
	g, err := ComputeGeometry(eng)
	if err != nil {
		return err
	}
	if n := g.Amount.Len(); n > SpriteBudget {
		return fmt.Errorf("%w: %d cells exceed the sprite budget of %d", ErrDegenerateGrid, n, SpriteBudget)
	}

	if v.current != nil {
		v.current.Cancel()
	}

	v.Geometry = g
	v.Epoch++
	v.Render.SetPosition(-g.Cell.Width, -g.Cell.Height)

	for _, l := range v.layers() {
		l.Sprites = UpdateLayer(eng, l.Container, g)
		l.Sprites.Epoch = v.Epoch
	}

	v.drawGrid(eng, g)
	v.drawLabel(eng, g)
	v.restore(eng)

	v.opts.logger.Debug("backdrop layout",
		"epoch", v.Epoch,
		"viewport", g.Viewport,
		"cols", g.Amount.Cols,
		"rows", g.Amount.Rows,
		"cell_w", g.Cell.Width,
		"cell_h", g.Cell.Height,
	)

	v.startQueued(eng)
	return nil
}

func (v *View) layers() []*Layer {
	return []*Layer{&v.Actor1, &v.Actor2, &v.Extra}
}

// ActiveLayer returns the foreground actor layer, or nil before the first transition.
func (v *View) ActiveLayer() *Layer {
	switch v.Active {
	case ShowingLayer1:
		return &v.Actor1
	case ShowingLayer2:
		return &v.Actor2
	default:
		return nil
	}
}

// Transition returns the running transition, or nil.
func (v *View) Transition() *Transition {
	return v.current
}

// Queued returns the number of transitions waiting to start.
func (v *View) Queued() int {
	return len(v.queue)
}

// drawGrid lays one faint horizontal line per row and one vertical line per column.
func (v *View) drawGrid(eng Engine, g Geometry) {
	v.Grid.DisposeChildren()

	w, h := float64(g.Viewport.Width), float64(g.Viewport.Height)
	horizontal := CreateGraphicTexture(eng, scene.ColorWhite, 0, 0, w+gridLineOverhang, 1)
	vertical := CreateGraphicTexture(eng, scene.ColorWhite, 0, 0, 1, h+gridLineOverhang)

	for row := 0; row < g.Amount.Rows; row++ {
		_, y := g.CellOrigin(row, 0)
		v.Grid.AddChild(CreateSprite(eng, horizontal, 0, y, GridAlpha))
	}
	for col := 0; col < g.Amount.Cols; col++ {
		x, _ := g.CellOrigin(0, col)
		v.Grid.AddChild(CreateSprite(eng, vertical, x, 0, GridAlpha))
	}
}

// drawLabel centers the watermark on the viewport.
func (v *View) drawLabel(eng Engine, g Geometry) {
	v.Text.DisposeChildren()
	if v.opts.label == "" {
		return
	}
	w, h := float64(g.Viewport.Width), float64(g.Viewport.Height)
	label := eng.NewText("label", v.opts.label, scene.TextStyle{
		Size:    w * LabelScale,
		Color:   v.opts.labelColor,
		AnchorX: 0.5,
		AnchorY: 0.5,
	})
	label.Alpha = LabelAlpha
	label.SetPosition(w/2, h/2)
	v.Text.AddChild(label)
}

// restore repaints the background that was showing onto the freshly built
// foreground grid at its resting alphas.
func (v *View) restore(eng Engine) {
	front := v.ActiveLayer()
	if front == nil || v.shown == "" {
		return
	}
	tex, ok := eng.Texture(v.shown)
	if !ok {
		return
	}
	ratio, err := TileRatio(tex, v.Geometry.Amount)
	if err != nil {
		v.opts.logger.Warn("backdrop: cannot restore background", "id", v.shown, "error", err)
		return
	}
	rows := v.Geometry.Amount.Rows
	for row, cells := range front.Sprites.Cells {
		for col, s := range cells {
			s.SetTexture(eng.SubTexture(tex, tileRect(row, col, ratio)))
			s.Alpha = TargetAlpha(row, rows)
		}
	}
}
