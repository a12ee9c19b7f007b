package backdrop

import "fmt"

const (
	// LandscapeCols is the column count when the viewport is wider than tall.
	LandscapeCols = 20
	// PortraitCols is the column count when the viewport is at least as tall as wide.
	PortraitCols = 10
	// BorderCells is the number of cells per axis reserved as pointer slack.
	// Half of it hangs off each edge of the screen.
	BorderCells = 2
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height int
}

// Portrait reports whether the viewport is at least as tall as it is wide.
func (v Viewport) Portrait() bool {
	return v.Height >= v.Width
}

// CellAmount is the grid size in cells.
type CellAmount struct {
	Cols, Rows int
}

// Len returns the total number of cells.
func (a CellAmount) Len() int {
	return a.Cols * a.Rows
}

// CellSize is the on-screen size of one cell in pixels.
type CellSize struct {
	Width, Height float64
}

// Geometry bundles everything derived from one viewport reading. It is never
// stored as truth: layout calls recompute it from the live viewport.
type Geometry struct {
	Viewport Viewport
	Amount   CellAmount
	Cell     CellSize
}

// CellOrigin returns the top-left corner of cell (row, col) in render-layer
// coordinates.
func (g Geometry) CellOrigin(row, col int) (x, y float64) {
	return float64(col) * g.Cell.Width, float64(row) * g.Cell.Height
}

// CalcViewport reads the window size, falling back per axis to the screen
// size when the window reports nothing.
func CalcViewport(eng Engine) (Viewport, error) {
	w, h := eng.WindowSize()
	if w <= 0 || h <= 0 {
		sw, sh := eng.ScreenSize()
		if w <= 0 {
			w = sw
		}
		if h <= 0 {
			h = sh
		}
	}
	if w <= 0 || h <= 0 {
		return Viewport{}, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, w, h)
	}
	return Viewport{Width: w, Height: h}, nil
}

// GetCellAmount picks the column count from the orientation and fits as many
// square-ish rows as the height allows: rows = floor(h / floor(w/cols)).
// The row count is clamped to at least 1.
func GetCellAmount(vp Viewport) (CellAmount, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return CellAmount{}, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, vp.Width, vp.Height)
	}
	cols := LandscapeCols
	if vp.Portrait() {
		cols = PortraitCols
	}
	step := vp.Width / cols
	if step == 0 {
		return CellAmount{}, fmt.Errorf("%w: width %d is narrower than %d cells", ErrInvalidViewport, vp.Width, cols)
	}
	return CellAmount{Cols: cols, Rows: max(vp.Height/step, 1)}, nil
}

// GetCellSize stretches the grid so that all but the border cells cover the
// viewport exactly.
func GetCellSize(vp Viewport, amount CellAmount) (CellSize, error) {
	if amount.Cols <= BorderCells || amount.Rows <= BorderCells {
		return CellSize{}, fmt.Errorf("%w: %dx%d cells leave no room inside a %d-cell border",
			ErrDegenerateGrid, amount.Cols, amount.Rows, BorderCells)
	}
	return CellSize{
		Width:  float64(vp.Width) / float64(amount.Cols-BorderCells),
		Height: float64(vp.Height) / float64(amount.Rows-BorderCells),
	}, nil
}

// ComputeGeometry reads the live viewport and derives the cell amount and size.
func ComputeGeometry(eng Engine) (Geometry, error) {
	vp, err := CalcViewport(eng)
	if err != nil {
		return Geometry{}, err
	}
	amount, err := GetCellAmount(vp)
	if err != nil {
		return Geometry{}, err
	}
	cell, err := GetCellSize(vp, amount)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Viewport: vp, Amount: amount, Cell: cell}, nil
}
