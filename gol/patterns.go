package gol

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"

	"uk.ac.bris.cs/sdllife/util"
)

// Pattern names a starting board
type Pattern string

const (
	PatternGliders Pattern = "gliders"
	PatternBlinker Pattern = "blinker"
	PatternNoise   Pattern = "noise"
)

var ErrUnknownPattern = errors.New("unknown pattern")

// ParsePattern converts a flag value into a Pattern
func ParsePattern(name string) (Pattern, error) {
	switch p := Pattern(name); p {
	case PatternGliders, PatternBlinker, PatternNoise:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Glider heads south-east, moving one cell down and right every 4 generations.
//
//	.#.
//	..#
//	###
var Glider = []util.Cell{
	{X: 1, Y: 0},
	{X: 2, Y: 1},
	{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
}

// Blinker is a period 2 oscillator, horizontal phase.
var Blinker = []util.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

// Noise thresholds
const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseScale     = 0.1
	noiseThreshold = 0.1
)

// SeedGliders places five gliders: one in the middle of the board and one
// in each diagonal quarter around it.
func SeedGliders(g *Grid) {
	cx, cy := g.width/2-1, g.height/2-1
	dx, dy := g.width/4, g.height/4
	offsets := []util.Cell{
		{X: 0, Y: 0},
		{X: -dx, Y: -dy},
		{X: dx, Y: -dy},
		{X: -dx, Y: dy},
		{X: dx, Y: dy},
	}
	for _, o := range offsets {
		g.SetCells(util.Translate(Glider, cx+o.X, cy+o.Y))
	}
}

// SeedBlinker places a single blinker in the middle of the board
func SeedBlinker(g *Grid) {
	g.SetCells(util.Translate(Blinker, g.width/2-1, g.height/2))
}

// SeedNoise brings cells to life wherever 2D Perlin noise is above a threshold.
// The same seed always gives the same board.
func SeedNoise(g *Grid, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) > noiseThreshold {
				g.Set(x, y, true)
			}
		}
	}
}
