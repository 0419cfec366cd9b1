package gol

import (
	"fmt"

	"uk.ac.bris.cs/sdllife/util"
)

// Event represents any Game of Life event that the frame loop reports.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

// String methods allow the different types of Events and States to be printed.
func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent every time the execution state changes
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// TurnComplete is sent after every generation
type TurnComplete struct {
	CompletedTurns int
	Flipped        int
}

// AliveCellsCount is sent every two seconds of wall time
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// FinalTurnComplete is sent once when the loop stops
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("Turn %d (%d flipped)", event.CompletedTurns, event.Flipped)
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %d", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final turn, %d alive", len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
