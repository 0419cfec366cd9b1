package main

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"uk.ac.bris.cs/sdllife/gol"
)

// Generations to run headless when -turns isn't given
const defaultHeadlessTurns = 1000

// headlessResult summarises a run without a window
type headlessResult struct {
	Turns    int
	Alive    int
	Distinct int // boards seen, including the seed
	Period   int // 0 if the board never repeated
	Since    int // first generation of the repeating cycle
}

func (r headlessResult) String() string {
	if r.Period == 0 {
		return fmt.Sprintf("turn %d: %d alive, %d distinct boards", r.Turns, r.Alive, r.Distinct)
	}
	return fmt.Sprintf("turn %d: %d alive, %d distinct boards, repeating every %d turns since turn %d",
		r.Turns, r.Alive, r.Distinct, r.Period, r.Since)
}

// runHeadless seeds life and advances it without presenting anything.
// It stops early once the board starts repeating.
func runHeadless(p gol.Params, life *gol.Life, out io.Writer) (headlessResult, error) {
	if err := p.Validate(); err != nil {
		return headlessResult{}, err
	}
	turns := p.Turns
	if turns == 0 {
		turns = defaultHeadlessTurns
	}

	spinner := wow.New(out, spin.Get(spin.Dots), " Seeding "+string(p.Pattern))
	spinner.Start()
	life.Seed(p.Pattern, p.Seed)
	spinner.PersistWith(spin.Spinner{Frames: []string{"✔"}}, fmt.Sprintf(" Seeded %d cells", life.Grid().CountAlive()))

	history := gol.NewHistory()
	history.Record(life.Grid(), 0)

	bar := pb.New(turns)
	bar.SetWriter(out)
	bar.Start()
	defer bar.Finish()

	res := headlessResult{}
	for life.Generation() < turns {
		life.Tick()
		bar.Increment()
		if period, repeated := history.Record(life.Grid(), life.Generation()); repeated {
			res.Period = period
			res.Since = life.Generation() - period
			gol.Logger().Info("board repeating", "turn", life.Generation(), "period", period)
			break
		}
	}
	res.Turns = life.Generation()
	res.Alive = life.Grid().CountAlive()
	res.Distinct = history.Len()
	return res, nil
}
