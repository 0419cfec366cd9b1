package gol

import (
	"errors"
	"testing"

	"uk.ac.bris.cs/sdllife/util"
)

func TestSeedGliders(t *testing.T) {
	g := NewGrid(DefaultSize, DefaultSize)
	SeedGliders(g)
	if n := g.CountAlive(); n != 5*len(Glider) {
		t.Fatalf("expected %d alive cells, got %d", 5*len(Glider), n)
	}
	for _, corner := range []util.Cell{{X: 39, Y: 39}, {X: 19, Y: 19}, {X: 59, Y: 19}, {X: 19, Y: 59}, {X: 59, Y: 59}} {
		for _, c := range util.Translate(Glider, corner.X, corner.Y) {
			if !g.Alive(c.X, c.Y) {
				t.Errorf("expected glider cell %v alive", c)
			}
		}
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	a, b := NewGrid(40, 40), NewGrid(40, 40)
	SeedNoise(a, 42)
	SeedNoise(b, 42)
	if !a.Equal(b) {
		t.Error("expected the same seed to give the same board")
	}
	if a.CountAlive() == 0 {
		t.Error("expected noise to bring some cells to life")
	}
}

func TestLifeSeedResets(t *testing.T) {
	life := NewLife(20, 20)
	life.Seed(PatternBlinker, 0)
	tickN(life, 3)
	life.Seed(PatternGliders, 0)
	if life.Generation() != 0 {
		t.Errorf("expected generation 0 after seeding, got %d", life.Generation())
	}
	if n := life.Grid().CountAlive(); n != 25 {
		t.Errorf("expected only the gliders alive, got %d cells", n)
	}
}

func TestParsePattern(t *testing.T) {
	for _, name := range []string{"gliders", "blinker", "noise"} {
		if p, err := ParsePattern(name); err != nil || string(p) != name {
			t.Errorf("ParsePattern(%q) = %q, %v", name, p, err)
		}
	}
	if _, err := ParsePattern("pulsar"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestHistoryFindsPeriod(t *testing.T) {
	tests := []struct {
		name   string
		cells  []util.Cell
		period int
	}{
		{"block", []util.Cell{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}, 1},
		{"blinker", util.Translate(Blinker, 2, 3), 2},
		{"single cell dies then stays empty", []util.Cell{{X: 3, Y: 3}}, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			life := lifeWith(7, 7, test.cells)
			h := NewHistory()
			h.Record(life.Grid(), 0)
			for i := 0; i < 10; i++ {
				life.Tick()
				if period, ok := h.Record(life.Grid(), life.Generation()); ok {
					if period != test.period {
						t.Errorf("expected period %d, got %d", test.period, period)
					}
					return
				}
			}
			t.Error("expected the board to repeat")
		})
	}
}

func TestHistoryTellsShapesApart(t *testing.T) {
	// Both boards pack into the same single byte
	wide := GridFromCells(4, 2, []util.Cell{{X: 0, Y: 0}, {X: 3, Y: 0}})
	tall := GridFromCells(2, 4, []util.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}})
	h := NewHistory()
	h.Record(wide, 0)
	if _, repeated := h.Record(tall, 1); repeated {
		t.Error("a differently shaped board should not count as a repeat")
	}
	if period, repeated := h.Record(tall, 2); !repeated || period != 1 {
		t.Errorf("expected period 1, got %d (repeated %v)", period, repeated)
	}
	if h.Len() != 1 {
		t.Errorf("expected 1 board remembered, got %d", h.Len())
	}
}
