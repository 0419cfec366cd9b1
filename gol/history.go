package gol

import "uk.ac.bris.cs/sdllife/util"

type snapshot struct {
	generation int
	board      *util.BitBoard
}

// History remembers a packed fingerprint of every generation it is shown,
// so a run can tell when the board has started repeating itself.
type History struct {
	seen map[string]snapshot
}

func NewHistory() *History {
	return &History{seen: make(map[string]snapshot)}
}

// Record stores grid as generation gen. If the exact same board was recorded
// before, it returns the distance between the two generations.
func (h *History) Record(grid *Grid, gen int) (period int, repeated bool) {
	board := util.BitBoardFromBoard(grid)
	key := board.Key()
	// The packed bytes don't carry the shape, so a 2x4 and a 4x2 board can share a key
	if first, ok := h.seen[key]; ok && first.board.Equal(board) {
		return gen - first.generation, true
	}
	h.seen[key] = snapshot{generation: gen, board: board}
	return 0, false
}

// Len returns how many distinct boards have been recorded
func (h *History) Len() int { return len(h.seen) }
