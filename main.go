package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"uk.ac.bris.cs/sdllife/ebitenview"
	"uk.ac.bris.cs/sdllife/gol"
	"uk.ac.bris.cs/sdllife/sdl"
)

const title = "Game of Life"

// SDL has to be driven from the main OS thread
func init() {
	runtime.LockOSThread()
}

type options struct {
	params   gol.Params
	scale    int
	backend  string
	headless bool
	verbose  bool
}

func parseFlags(args []string) (options, error) {
	opts := options{params: gol.DefaultParams()}
	fs := flag.NewFlagSet(title, flag.ContinueOnError)

	fs.IntVar(&opts.params.Width, "w", gol.DefaultSize, "Specify the width of the board in cells.")
	fs.IntVar(&opts.params.Height, "h", gol.DefaultSize, "Specify the height of the board in cells.")
	fs.IntVar(&opts.params.Turns, "turns", 0, "Number of generations to run. 0 runs until the window is closed.")
	fs.DurationVar(&opts.params.FrameDelay, "delay", gol.DefaultFrameDelay, "Pause between frames.")
	fs.Int64Var(&opts.params.Seed, "seed", 1, "Seed for the noise pattern.")
	pattern := fs.String("pattern", string(gol.PatternGliders), "Starting pattern: gliders, blinker or noise.")
	fs.IntVar(&opts.scale, "scale", 8, "Window pixels per cell.")
	fs.StringVar(&opts.backend, "backend", "sdl", "Window backend: sdl or ebiten.")
	fs.BoolVar(&opts.headless, "headless", false, "Run without a window and print a summary.")
	fs.BoolVar(&opts.verbose, "v", false, "Log every generation.")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	p, err := gol.ParsePattern(*pattern)
	if err != nil {
		return opts, err
	}
	opts.params.Pattern = p
	if opts.scale <= 0 {
		return opts, fmt.Errorf("scale must be positive, got %d", opts.scale)
	}
	if opts.backend != "sdl" && opts.backend != "ebiten" {
		return opts, fmt.Errorf("unknown backend %q", opts.backend)
	}
	return opts, opts.params.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		return
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gol.SetLogger(logger)

	if err == nil {
		err = run(opts)
	}
	if err != nil {
		logger.Error("game of life failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	p := opts.params
	life := gol.NewLife(p.Width, p.Height)

	if opts.headless {
		res, err := runHeadless(p, life, os.Stdout)
		if err != nil {
			return err
		}
		fmt.Println(res)
		return nil
	}

	life.Seed(p.Pattern, p.Seed)
	gol.Logger().Info("seeded", "pattern", p.Pattern, "alive", life.Grid().CountAlive())

	notify := func(e gol.Event) {
		if final, ok := e.(gol.FinalTurnComplete); ok {
			gol.Logger().Info("finished", "turn", final.CompletedTurns, "alive", len(final.Alive))
		}
	}

	if opts.backend == "ebiten" {
		return ebitenview.Run(title, opts.scale, p.FrameDelay, gol.NewSession(p, life, notify))
	}

	window, err := sdl.NewWindow(title, sdl.PosUndefined, sdl.PosUndefined, int32(p.Width*opts.scale), int32(p.Height*opts.scale))
	if err != nil {
		return err
	}
	defer window.Destroy()
	if err := window.AttachTexture(int32(p.Width), int32(p.Height)); err != nil {
		return err
	}
	return gol.Run(p, life, window, notify)
}
