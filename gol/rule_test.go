package gol

import (
	"sort"
	"testing"

	"uk.ac.bris.cs/sdllife/util"
)

func sortCells(cells []util.Cell) []util.Cell {
	sorted := append([]util.Cell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// assertEqualCells compares two sets of alive cells regardless of order
func assertEqualCells(t *testing.T, want, got []util.Cell) {
	t.Helper()
	want, got = sortCells(want), sortCells(got)
	if len(want) != len(got) {
		t.Fatalf("expected %d alive cells %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("expected alive cells %v, got %v", want, got)
		}
	}
}

func tickN(life *Life, n int) {
	for i := 0; i < n; i++ {
		life.Tick()
	}
}

func lifeWith(width, height int, alive []util.Cell) *Life {
	life := NewLife(width, height)
	life.Grid().SetCells(alive)
	return life
}

func TestIsolatedCellDies(t *testing.T) {
	life := lifeWith(5, 5, []util.Cell{{X: 2, Y: 2}})
	flipped := life.Tick()
	if flipped != 1 {
		t.Errorf("expected 1 flipped cell, got %d", flipped)
	}
	if n := life.Grid().CountAlive(); n != 0 {
		t.Errorf("expected empty board, got %d alive", n)
	}
}

func TestNextCellState(t *testing.T) {
	tests := []struct {
		name       string
		alive      bool
		neighbours int
		want       bool
	}{
		{"live with 0 dies", true, 0, false},
		{"live with 1 dies", true, 1, false},
		{"live with 2 survives", true, 2, true},
		{"live with 3 survives", true, 3, true},
		{"live with 4 dies", true, 4, false},
		{"live with 8 dies", true, 8, false},
		{"dead with 2 stays dead", false, 2, false},
		{"dead with 3 is born", false, 3, true},
		{"dead with 4 stays dead", false, 4, false},
	}
	// Neighbour positions around the centre of a 3x3 board
	ring := []util.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := GridFromCells(3, 3, ring[:test.neighbours])
			g.Set(1, 1, test.alive)
			if got := CountAliveNeighbours(1, 1, g); got != test.neighbours {
				t.Fatalf("expected %d neighbours, counted %d", test.neighbours, got)
			}
			if got := NextCellState(1, 1, g); got != test.want {
				t.Errorf("expected %v, got %v", test.want, got)
			}
		})
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	horizontal := util.Translate(Blinker, 3, 4)
	vertical := []util.Cell{{X: 4, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 5}}

	life := lifeWith(9, 9, horizontal)
	life.Tick()
	assertEqualCells(t, vertical, life.Grid().AliveCells())
	life.Tick()
	assertEqualCells(t, horizontal, life.Grid().AliveCells())
}

func TestGliderTranslates(t *testing.T) {
	start := util.Translate(Glider, 5, 5)
	life := lifeWith(30, 30, start)

	for cycle := 1; cycle <= 3; cycle++ {
		tickN(life, 4)
		assertEqualCells(t, util.Translate(start, cycle, cycle), life.Grid().AliveCells())
	}
	if life.Generation() != 12 {
		t.Errorf("expected generation 12, got %d", life.Generation())
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	t.Run("opposite corners are not neighbours", func(t *testing.T) {
		g := GridFromCells(6, 6, []util.Cell{{X: 5, Y: 5}, {X: 5, Y: 0}, {X: 0, Y: 5}})
		if n := CountAliveNeighbours(0, 0, g); n != 0 {
			t.Errorf("expected 0 neighbours at the corner, got %d", n)
		}
	})

	t.Run("block in the corner is still", func(t *testing.T) {
		block := []util.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
		life := lifeWith(4, 4, block)
		tickN(life, 3)
		assertEqualCells(t, block, life.Grid().AliveCells())
	})

	t.Run("blinker on the top edge dies out", func(t *testing.T) {
		life := lifeWith(6, 6, Blinker)
		life.Tick()
		assertEqualCells(t, []util.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}}, life.Grid().AliveCells())
		life.Tick()
		assertEqualCells(t, nil, life.Grid().AliveCells())
	})

	t.Run("glider stops at the bottom right corner", func(t *testing.T) {
		// A glider running into a corner becomes a block
		life := lifeWith(8, 8, util.Translate(Glider, 3, 3))
		tickN(life, 40)
		want := []util.Cell{{X: 6, Y: 6}, {X: 7, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 7}}
		assertEqualCells(t, want, life.Grid().AliveCells())
	})
}

func TestStepLeavesCurrentUntouched(t *testing.T) {
	current := GridFromCells(9, 9, util.Translate(Glider, 2, 2))
	before := NewGrid(9, 9)
	before.CopyFrom(current)
	next := NewGrid(9, 9)

	Step(current, next)
	if !current.Equal(before) {
		t.Error("Step modified the current generation")
	}
	if next.Equal(current) {
		t.Error("expected the next generation to differ from a glider")
	}
}

func TestStepSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for mismatched grids")
		}
	}()
	Step(NewGrid(3, 3), NewGrid(4, 3))
}

func BenchmarkStep(b *testing.B) {
	life := NewLife(DefaultSize, DefaultSize)
	life.Seed(PatternNoise, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		life.Tick()
	}
}
