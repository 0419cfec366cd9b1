package gol

/*

any live cell with fewer than two live neighbours dies
any live cell with two or three live neighbours is unaffected
any live cell with more than three live neighbours dies
any dead cell with exactly three live neighbours becomes alive

*/

// Step calculates the generation after current and writes it into next.
// current is only ever read, so every cell sees the same generation.
// Returns the number of cells that flipped.
func Step(current, next *Grid) int {
	if current.width != next.width || current.height != next.height {
		panic("gol: grid size mismatch")
	}
	flipped := 0
	for row := 0; row < current.height; row++ {
		for col := 0; col < current.width; col++ {
			newCell := NextCellState(col, row, current)
			if newCell != current.Alive(col, row) {
				flipped++
			}
			next.cells[row*next.width+col] = newCell
		}
	}
	return flipped
}

// NextCellState calculates the next state of a cell according to Game of Life rules
func NextCellState(x, y int, grid *Grid) bool {
	adj := CountAliveNeighbours(x, y, grid)

	if grid.Alive(x, y) {
		// If only 2 or 3 neighbours then stay alive
		return adj == 2 || adj == 3
	}
	// If there are 3 neighbours then come alive
	return adj == 3
}

// CountAliveNeighbours counts how many of the 8 surrounding cells are alive.
// The board doesn't wrap: anything past the edge counts as dead.
func CountAliveNeighbours(x, y int, grid *Grid) int {
	numNeighbours := 0
	for _x := -1; _x < 2; _x++ {
		for _y := -1; _y < 2; _y++ {
			// Ignore the centre cell
			if _x == 0 && _y == 0 {
				continue
			}
			if grid.Alive(x+_x, y+_y) {
				numNeighbours++
			}
		}
	}
	return numNeighbours
}
