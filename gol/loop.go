package gol

import (
	"fmt"
	"time"
)

// How often an AliveCellsCount event is sent
var aliveReportInterval = 2 * time.Second

// Session is one run of the simulation, advanced a frame at a time by
// whichever window backend is driving it.
type Session struct {
	params Params
	life   *Life
	fb     *Framebuffer
	state  State
	notify func(Event)

	lastReport time.Time
	finished   bool
}

// NewSession wraps life so it can be driven by a frame loop. notify may be nil.
func NewSession(p Params, life *Life, notify func(Event)) *Session {
	if notify == nil {
		notify = func(Event) {}
	}
	grid := life.Grid()
	return &Session{
		params:     p,
		life:       life,
		fb:         NewFramebuffer(grid.Width(), grid.Height()),
		state:      Executing,
		notify:     notify,
		lastReport: time.Now(),
	}
}

// State returns whether the session is running, paused or quitting
func (s *Session) State() State { return s.state }

// Life returns the simulation being driven
func (s *Session) Life() *Life { return s.life }

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.state = state
	Logger().Info("state change", "turn", s.life.Generation(), "state", state)
	s.notify(StateChange{CompletedTurns: s.life.Generation(), NewState: state})
}

// Advance handles this frame's input and moves the simulation on by one
// generation unless it is paused. It returns false once the session is over.
func (s *Session) Advance(keys []rune, quitRequested bool) bool {
	if s.state == Quitting {
		return false
	}
	stepOnce := false
	for _, key := range keys {
		cmd, ok := parseKey(key)
		if !ok {
			continue
		}
		switch cmd {
		case quit:
			quitRequested = true
		case pause:
			if s.state == Paused {
				s.setState(Executing)
			} else {
				s.setState(Paused)
			}
		case step:
			stepOnce = s.state == Paused
		case reseed:
			s.life.Seed(s.params.Pattern, s.params.Seed)
			Logger().Info("reseeded", "pattern", s.params.Pattern)
		}
	}
	if quitRequested {
		s.setState(Quitting)
		return false
	}

	if s.state == Executing || stepOnce {
		flipped := s.life.Tick()
		turn := s.life.Generation()
		Logger().Debug("turn complete", "turn", turn, "flipped", flipped)
		s.notify(TurnComplete{CompletedTurns: turn, Flipped: flipped})
	}

	if now := time.Now(); now.Sub(s.lastReport) >= aliveReportInterval {
		s.lastReport = now
		s.notify(AliveCellsCount{
			CompletedTurns: s.life.Generation(),
			CellsCount:     s.life.Grid().CountAlive(),
		})
	}

	if s.params.Turns > 0 && s.life.Generation() >= s.params.Turns {
		s.setState(Quitting)
	}
	return true
}

// Framebuffer renders the current generation and returns it
func (s *Session) Framebuffer() *Framebuffer {
	s.fb.Render(s.life.Grid())
	return s.fb
}

// Finish reports the final board. Calling it more than once does nothing.
func (s *Session) Finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.setState(Quitting)
	s.notify(FinalTurnComplete{
		CompletedTurns: s.life.Generation(),
		Alive:          s.life.Grid().AliveCells(),
	})
}

// Run is the frame loop: poll input, advance, present, wait.
// It only returns once the window is closed, a quit key is pressed or
// the configured number of turns has been reached.
func Run(p Params, life *Life, d Display, notify func(Event)) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if grid := life.Grid(); grid.Width() != p.Width || grid.Height() != p.Height {
		return fmt.Errorf("%w: params are %dx%d but the board is %dx%d",
			ErrBadSize, p.Width, p.Height, grid.Width(), grid.Height())
	}
	s := NewSession(p, life, notify)
	defer s.Finish()

	for {
		keys, quitRequested := d.PollKeys()
		if !s.Advance(keys, quitRequested) {
			return nil
		}
		if err := d.Present(s.Framebuffer()); err != nil {
			return fmt.Errorf("presenting turn %d: %w", life.Generation(), err)
		}
		if s.State() == Quitting {
			return nil
		}
		if p.FrameDelay > 0 {
			time.Sleep(p.FrameDelay)
		}
	}
}
