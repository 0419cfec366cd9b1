package gol

import (
	"errors"
	"fmt"
	"time"
)

// Defaults for the demo window
const (
	DefaultSize       = 80
	DefaultFrameDelay = 100 * time.Millisecond
)

var ErrBadSize = errors.New("grid dimensions must be positive")

// Params provides the details of how to run the Game of Life.
type Params struct {
	Width      int
	Height     int
	// Turns counts from the last seed, so reseeding starts it again. 0 runs until quit.
	Turns      int
	FrameDelay time.Duration
	Pattern    Pattern
	Seed       int64
}

// DefaultParams is the 80x80 glider demo
func DefaultParams() Params {
	return Params{
		Width:      DefaultSize,
		Height:     DefaultSize,
		FrameDelay: DefaultFrameDelay,
		Pattern:    PatternGliders,
	}
}

// Validate rejects params that can't describe a board
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, p.Width, p.Height)
	}
	if p.Turns < 0 {
		return fmt.Errorf("turns must not be negative, got %d", p.Turns)
	}
	return nil
}

// Display is a window the frame loop can draw into.
type Display interface {
	// PollKeys drains pending input without blocking.
	// quit is true once the user has asked to close the window.
	PollKeys() (keys []rune, quit bool)
	// Present uploads the framebuffer and shows it.
	Present(fb *Framebuffer) error
}
