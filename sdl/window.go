// Package sdl is a thin wrapper over go-sdl2: one window, an accelerated
// renderer and a streaming texture the framebuffer is uploaded into.
package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/sdllife/gol"
	"uk.ac.bris.cs/sdllife/util"
)

// PosUndefined lets the window manager place the window
const PosUndefined = int32(sdl.WINDOWPOS_UNDEFINED)

// Window owns every SDL resource for one window.
// SDL is not thread safe, so all methods must be called from the main thread.
type Window struct {
	Width, Height int32

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	texWidth, texHeight int32
}

// NewWindow initialises SDL and opens a window of width x height pixels at (x, y)
func NewWindow(title string, x, y, width, height int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(title, x, y, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	gol.Logger().Info("window opened", "title", title, "width", width, "height", height)
	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
	}, nil
}

// AttachTexture creates the streaming texture that frames are uploaded into.
// The renderer's logical size is set to the texture so it is scaled to fill the window.
func (w *Window) AttachTexture(width, height int32) error {
	if w.texture != nil {
		if err := w.texture.Destroy(); err != nil {
			return fmt.Errorf("destroying old texture: %w", err)
		}
		w.texture = nil
	}
	if err := w.renderer.SetLogicalSize(width, height); err != nil {
		return fmt.Errorf("setting logical size: %w", err)
	}
	texture, err := w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		return fmt.Errorf("creating texture: %w", err)
	}
	w.texture = texture
	w.texWidth, w.texHeight = width, height
	return nil
}

// Destroy releases everything and shuts SDL down.
// These only fail if the handles are already invalid.
func (w *Window) Destroy() {
	if w.texture != nil {
		util.Check(w.texture.Destroy())
		w.texture = nil
	}
	util.Check(w.renderer.Destroy())
	util.Check(w.window.Destroy())
	sdl.Quit()
}

// Fill paints the whole window one colour and shows it
func (w *Window) Fill(r, g, b, a uint8) error {
	if err := w.renderer.SetDrawColor(r, g, b, a); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

// PollKeys drains the SDL event queue without blocking
func (w *Window) PollKeys() (keys []rune, quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				keys = append(keys, rune(e.Keysym.Sym))
			}
		}
	}
	return keys, quit
}

// Present uploads fb into the streaming texture and draws it
func (w *Window) Present(fb *gol.Framebuffer) error {
	if w.texture == nil || w.texWidth != int32(fb.Width) || w.texHeight != int32(fb.Height) {
		if err := w.AttachTexture(int32(fb.Width), int32(fb.Height)); err != nil {
			return err
		}
	}
	if err := w.texture.Update(nil, fb.Pixels, fb.Pitch()); err != nil {
		return fmt.Errorf("uploading texture: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

// Delay sleeps for ms milliseconds using SDL's timer
func Delay(ms uint32) {
	sdl.Delay(ms)
}
