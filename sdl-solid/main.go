package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"uk.ac.bris.cs/sdllife/gol"
	"uk.ac.bris.cs/sdllife/sdl"
)

const (
	x, y          = 0, 0
	width, height = 1200, 800
	showFor       = 10 * time.Second
	pollEvery     = 16 // ms
)

func init() {
	runtime.LockOSThread()
}

// poller is the part of the window waitForQuit needs
type poller interface {
	PollKeys() (keys []rune, quit bool)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gol.SetLogger(logger)

	if err := run(); err != nil {
		logger.Error("solid colour demo failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	window, err := sdl.NewWindow("hola", x, y, width, height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := window.Fill(100, 60, 60, 255); err != nil {
		return fmt.Errorf("painting window: %w", err)
	}

	if waitForQuit(window, time.Now().Add(showFor), func() { sdl.Delay(pollEvery) }) {
		gol.Logger().Info("window closed")
	}
	return nil
}

// waitForQuit polls until the window is closed or the deadline passes.
// It reports whether the window was closed.
func waitForQuit(w poller, deadline time.Time, wait func()) bool {
	for time.Now().Before(deadline) {
		if _, quit := w.PollKeys(); quit {
			return true
		}
		wait()
	}
	return false
}
