package backdrop

import (
	"errors"
	"testing"

	"github.com/phanxgames/backdrop/scene"
)

func names(nodes []*scene.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildViewTree(t *testing.T) {
	_, v := buildTestView(t)

	tests := []struct {
		parent *scene.Node
		want   []string
	}{
		{v.Render, []string{"main", "interact"}},
		{v.Main, []string{"actor2", "actor1", "overlay"}},
		{v.Interact, []string{"extra", "grid", "text"}},
	}
	for _, tt := range tests {
		if got := names(tt.parent.Children()); !equalStrings(got, tt.want) {
			t.Errorf("%s children = %v, want %v", tt.parent.Name, got, tt.want)
		}
	}
	for _, n := range []*scene.Node{v.Actor1.Container, v.Actor2.Container, v.Extra.Container, v.Grid} {
		if n.Type != scene.NodeTypeBatch || n.Capacity != SpriteBudget {
			t.Errorf("%s = %v/%d, want batch/%d", n.Name, n.Type, n.Capacity, SpriteBudget)
		}
	}
	if v.Active != ShowingNone || v.CurrentBg != -1 {
		t.Errorf("initial Active/CurrentBg = %v/%d, want none/-1", v.Active, v.CurrentBg)
	}
	if v.ActiveLayer() != nil {
		t.Error("ActiveLayer() should be nil before the first transition")
	}
}

func TestBuildViewNilEngine(t *testing.T) {
	v, err := BuildView(nil)
	if !errors.Is(err, ErrMissingEngine) {
		t.Errorf("err = %v, want ErrMissingEngine", err)
	}
	if v != nil {
		t.Error("view should be nil on error")
	}
}

func TestBuildViewDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"no size", 0, 0, ErrInvalidViewport},
		{"one row", 1000, 40, ErrDegenerateGrid},
		{"over budget", 10, 20000, ErrDegenerateGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildView(newTestEngine(tt.w, tt.h), WithLogger(quietLogger()))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildViewLayout(t *testing.T) {
	_, v := buildTestView(t)
	g := v.Geometry
	cw, ch := 1000.0/18, 62.5

	if g.Amount != (CellAmount{Cols: 20, Rows: 10}) {
		t.Fatalf("Amount = %+v, want 20x10", g.Amount)
	}
	if !near(v.Render.X, -cw) || !near(v.Render.Y, -ch) {
		t.Errorf("Render at (%f, %f), want (%f, %f)", v.Render.X, v.Render.Y, -cw, -ch)
	}

	for _, l := range v.layers() {
		if l.Container.NumChildren() != 200 || l.Sprites.Len() != 200 {
			t.Errorf("%s has %d children / %d cells, want 200", l.Container.Name, l.Container.NumChildren(), l.Sprites.Len())
		}
		if l.Sprites.Epoch != v.Epoch {
			t.Errorf("%s epoch = %d, want %d", l.Container.Name, l.Sprites.Epoch, v.Epoch)
		}
		s := l.Sprites.At(3, 4)
		if !near(s.X, 4*cw) || !near(s.Y, 3*ch) {
			t.Errorf("%s cell (3,4) at (%f, %f), want (%f, %f)", l.Container.Name, s.X, s.Y, 4*cw, 3*ch)
		}
		if s.Alpha != 0 {
			t.Errorf("%s cell alpha = %f, want 0", l.Container.Name, s.Alpha)
		}
		if w, h := s.Size(); !near(w, cw) || !near(h, ch) {
			t.Errorf("%s cell size = %fx%f, want %fx%f", l.Container.Name, w, h, cw, ch)
		}
	}
}

func TestBuildViewGridLines(t *testing.T) {
	_, v := buildTestView(t)
	if got := v.Grid.NumChildren(); got != 10+20 {
		t.Fatalf("grid lines = %d, want 30", got)
	}
	for i, line := range v.Grid.Children() {
		if line.Alpha != GridAlpha {
			t.Errorf("line %d alpha = %f, want %f", i, line.Alpha, GridAlpha)
		}
	}
	first := v.Grid.ChildAt(0)
	if w, h := first.Size(); w != 1000+gridLineOverhang || h != 1 {
		t.Errorf("horizontal line = %fx%f, want %dx1", w, h, 1000+gridLineOverhang)
	}
	vertical := v.Grid.ChildAt(10 + 1)
	if !near(vertical.X, v.Geometry.Cell.Width) {
		t.Errorf("second vertical line at x=%f, want %f", vertical.X, v.Geometry.Cell.Width)
	}
}

func TestBuildViewLabel(t *testing.T) {
	_, v := buildTestView(t)
	if v.Text.NumChildren() != 1 {
		t.Fatalf("text children = %d, want 1", v.Text.NumChildren())
	}
	label := v.Text.ChildAt(0)
	if label.TextBlock.Content != DefaultLabel {
		t.Errorf("label = %q, want %q", label.TextBlock.Content, DefaultLabel)
	}
	if label.Alpha != LabelAlpha {
		t.Errorf("label alpha = %f, want %f", label.Alpha, LabelAlpha)
	}
	if !near(label.TextBlock.Face.Size, 1000*LabelScale) {
		t.Errorf("label size = %f, want %f", label.TextBlock.Face.Size, 1000*LabelScale)
	}
	if label.TextBlock.Color.Hex() != DefaultLabelColor {
		t.Errorf("label color = 0x%X, want 0x%X", label.TextBlock.Color.Hex(), DefaultLabelColor)
	}
	if label.X != 500 || label.Y != 250 {
		t.Errorf("label at (%f, %f), want (500, 250)", label.X, label.Y)
	}
}

func TestBuildViewNoLabel(t *testing.T) {
	_, v := buildTestView(t, WithLabel(""))
	if v.Text.NumChildren() != 0 {
		t.Errorf("text children = %d, want 0", v.Text.NumChildren())
	}
}

func TestUpdateViewIdempotent(t *testing.T) {
	eng, v := buildTestView(t)
	old := v.Actor1.Sprites.At(0, 0)

	if err := UpdateView(eng, v); err != nil {
		t.Fatalf("UpdateView: %v", err)
	}
	if v.Epoch != 2 {
		t.Errorf("Epoch = %d, want 2", v.Epoch)
	}
	if !old.IsDisposed() {
		t.Error("sprites from the previous layout should be disposed")
	}
	for _, l := range v.layers() {
		if l.Container.NumChildren() != 200 {
			t.Errorf("%s children = %d, want 200", l.Container.Name, l.Container.NumChildren())
		}
	}
	if v.Grid.NumChildren() != 30 || v.Text.NumChildren() != 1 {
		t.Errorf("grid/text = %d/%d, want 30/1", v.Grid.NumChildren(), v.Text.NumChildren())
	}
}

func TestUpdateViewResize(t *testing.T) {
	eng, v := buildTestView(t)
	eng.SetWindowSize(500, 1000)

	if err := UpdateView(eng, v); err != nil {
		t.Fatalf("UpdateView: %v", err)
	}
	if v.Geometry.Amount != (CellAmount{Cols: 10, Rows: 20}) {
		t.Errorf("Amount = %+v, want 10x20", v.Geometry.Amount)
	}
	if v.Actor2.Sprites.Rows() != 20 || v.Actor2.Sprites.Cols() != 10 {
		t.Errorf("grid = %dx%d, want 20 rows x 10 cols", v.Actor2.Sprites.Rows(), v.Actor2.Sprites.Cols())
	}
	if v.Grid.NumChildren() != 30 {
		t.Errorf("grid lines = %d, want 30", v.Grid.NumChildren())
	}
}

func TestUpdateViewErrorLeavesViewUntouched(t *testing.T) {
	eng, v := buildTestView(t)
	cell := v.Actor1.Sprites.At(0, 0)
	eng.SetWindowSize(1000, 40)

	if err := UpdateView(eng, v); !errors.Is(err, ErrDegenerateGrid) {
		t.Fatalf("err = %v, want ErrDegenerateGrid", err)
	}
	if v.Epoch != 1 || cell.IsDisposed() || v.Geometry.Viewport != (Viewport{1000, 500}) {
		t.Error("failed layout should not touch the view")
	}
}
