package gol

// Life owns the simulation state. The current generation and the buffer the
// next one is written into are swapped every tick.
type Life struct {
	current    *Grid
	next       *Grid
	generation int
}

// NewLife makes a simulation with an empty board
func NewLife(width, height int) *Life {
	return &Life{
		current: NewGrid(width, height),
		next:    NewGrid(width, height),
	}
}

// Grid returns the current generation. It is only valid until the next Tick.
func (l *Life) Grid() *Grid { return l.current }

// Generation returns how many ticks have completed since the last seed
func (l *Life) Generation() int { return l.generation }

// Tick advances the simulation by one generation and returns how many cells flipped
func (l *Life) Tick() int {
	flipped := Step(l.current, l.next)
	l.current, l.next = l.next, l.current
	l.generation++
	return flipped
}

// Seed clears the board, places pattern p and resets the generation counter.
// seed is only used by patterns that are random.
func (l *Life) Seed(p Pattern, seed int64) {
	l.current.Clear()
	switch p {
	case PatternBlinker:
		SeedBlinker(l.current)
	case PatternNoise:
		SeedNoise(l.current, seed)
	default:
		SeedGliders(l.current)
	}
	l.generation = 0
}
