package util

// Cell is a grid coordinate, used whenever live cells are reported.
type Cell struct {
	X, Y int
}

// Board is anything that can report the state of a cell by coordinate.
type Board interface {
	Width() int
	Height() int
	Alive(x, y int) bool
}

// GetAliveCells returns all the alive cells in a board, in row-major order
func GetAliveCells(board Board) []Cell {
	aliveCells := make([]Cell, 0)
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			if board.Alive(col, row) {
				aliveCells = append(aliveCells, Cell{X: col, Y: row})
			}
		}
	}
	return aliveCells
}

// Translate returns a copy of cells shifted by (dx, dy)
func Translate(cells []Cell, dx, dy int) []Cell {
	moved := make([]Cell, len(cells))
	for i, c := range cells {
		moved[i] = Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return moved
}

// Check panics on a non-nil error. Only use it where an error means a bug.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}
