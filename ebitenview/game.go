// Package ebitenview drives a gol.Session from Ebitengine's game loop
// instead of SDL.
package ebitenview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"uk.ac.bris.cs/sdllife/gol"
)

// keys maps the Ebitengine keys the session understands onto runes
var keys = map[ebiten.Key]rune{
	ebiten.KeyQ:      'q',
	ebiten.KeyEscape: 27,
	ebiten.KeyP:      'p',
	ebiten.KeySpace:  ' ',
	ebiten.KeyN:      'n',
	ebiten.KeyR:      'r',
}

// Game implements ebiten.Game
type Game struct {
	session *gol.Session
	image   *ebiten.Image
	pressed []ebiten.Key
}

func NewGame(session *gol.Session) *Game {
	grid := session.Life().Grid()
	return &Game{
		session: session,
		image:   ebiten.NewImage(grid.Width(), grid.Height()),
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	return advance(g.session, g.pressed)
}

// keyRunes translates the keys the session understands and drops the rest
func keyRunes(pressed []ebiten.Key) []rune {
	var runes []rune
	for _, k := range pressed {
		if r, ok := keys[k]; ok {
			runes = append(runes, r)
		}
	}
	return runes
}

// advance runs one tick of the session, asking Ebitengine to stop once it is over
func advance(session *gol.Session, pressed []ebiten.Key) error {
	if !session.Advance(keyRunes(pressed), false) {
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the framebuffer; Layout makes Ebitengine scale it to the window
func (g *Game) Draw(screen *ebiten.Image) {
	g.image.WritePixels(g.session.Framebuffer().Pixels)
	screen.DrawImage(g.image, nil)
}

// Layout returns the grid size so one cell is one logical pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.image.Bounds().Dx(), g.image.Bounds().Dy()
}

// Run opens the window and blocks until it is closed or the session ends
func Run(title string, scale int, frameDelay time.Duration, session *gol.Session) error {
	defer session.Finish()

	grid := session.Life().Grid()
	ebiten.SetWindowSize(grid.Width()*scale, grid.Height()*scale)
	ebiten.SetWindowTitle(title)
	if frameDelay > 0 {
		ebiten.SetTPS(max(1, int(time.Second/frameDelay)))
	}

	gol.Logger().Info("window opened", "title", title, "backend", "ebiten")
	return ebiten.RunGame(NewGame(session))
}
