package gol

// keyCommand is what a key press asks the frame loop to do.
type keyCommand uint8

const (
	quit keyCommand = iota
	pause
	step
	reseed
)

const keyEscape = 27

// parseKey figures out what a key means. Unbound keys return false.
func parseKey(key rune) (keyCommand, bool) {
	switch key {
	case 'q', keyEscape:
		return quit, true
	case 'p', ' ':
		return pause, true
	case 'n':
		return step, true
	case 'r':
		return reseed, true
	}
	return 0, false
}
