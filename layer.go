package backdrop

import "github.com/phanxgames/backdrop/scene"

// SpriteGrid is a row-major grid of sprites, one per cell, indexed
// [row][col]. Epoch records which layout pass built it; sprites have no
// identity across epochs.
type SpriteGrid struct {
	Cells [][]*scene.Node
	Epoch uint64
}

// Rows returns the number of rows.
func (g SpriteGrid) Rows() int {
	return len(g.Cells)
}

// Cols returns the number of columns (0 for an empty grid).
func (g SpriteGrid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Len returns the total number of cells.
func (g SpriteGrid) Len() int {
	return g.Rows() * g.Cols()
}

// At returns the sprite at (row, col).
func (g SpriteGrid) At(row, col int) *scene.Node {
	return g.Cells[row][col]
}

// Layer pairs a container with the sprite grid it currently holds.
type Layer struct {
	Container *scene.Node
	Sprites   SpriteGrid
}

// UpdateLayer disposes the container's children and fills it with a fresh
// blank sprite per cell, sized to the cell and placed at its grid offset.
// Old sprites are not reused; tweens still pointing at them stop on their
// next update.
func UpdateLayer(eng Engine, container *scene.Node, g Geometry) SpriteGrid {
	container.DisposeChildren()

	cells := make([][]*scene.Node, g.Amount.Rows)
	for row := range cells {
		cells[row] = make([]*scene.Node, g.Amount.Cols)
		for col := range cells[row] {
			x, y := g.CellOrigin(row, col)
			s := CreateSprite(eng, nil, x, y, 0)
			s.SetSize(g.Cell.Width, g.Cell.Height)
			cells[row][col] = s
			container.AddChild(s)
		}
	}
	return SpriteGrid{Cells: cells}
}
