package gol

import "uk.ac.bris.cs/sdllife/util"

// Grid is a fixed size board of cells stored row-major.
// Cells outside the grid are always dead.
type Grid struct {
	width, height int
	cells         []bool
}

// NewGrid makes an empty (all dead) grid
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// GridFromCells makes a grid with only the given cells alive.
// Cells that fall outside the grid are ignored.
func GridFromCells(width, height int, alive []util.Cell) *Grid {
	g := NewGrid(width, height)
	g.SetCells(alive)
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Alive reports whether the cell at (x, y) is alive
func (g *Grid) Alive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y*g.width+x]
}

// Set changes the state of a cell. Out of bounds writes are dropped.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = alive
}

// SetCells sets every cell in the list alive
func (g *Grid) SetCells(alive []util.Cell) {
	for _, c := range alive {
		g.Set(c.X, c.Y, true)
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// CopyFrom overwrites this grid with the contents of src
func (g *Grid) CopyFrom(src *Grid) {
	if g.width != src.width || g.height != src.height {
		panic("gol: grid size mismatch")
	}
	copy(g.cells, src.cells)
}

// AliveCells returns the coordinates of all alive cells
func (g *Grid) AliveCells() []util.Cell {
	return util.GetAliveCells(g)
}

// CountAlive returns how many cells are alive
func (g *Grid) CountAlive() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
