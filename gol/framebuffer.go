package gol

// Pixel colours, RGBA byte order
var (
	aliveColour = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	deadColour  = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

// BytesPerPixel of the RGBA framebuffer
const BytesPerPixel = 4

// Framebuffer is the RGBA image of a grid that gets uploaded to the screen.
// Alive cells are white and dead cells are black.
type Framebuffer struct {
	Width, Height int
	Pixels        []byte
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*BytesPerPixel),
	}
}

// Pitch is the length of one row of pixels in bytes
func (f *Framebuffer) Pitch() int { return f.Width * BytesPerPixel }

// Render paints every cell of g into the framebuffer
func (f *Framebuffer) Render(g *Grid) {
	if g.width != f.Width || g.height != f.Height {
		panic("gol: framebuffer size mismatch")
	}
	for i, alive := range g.cells {
		colour := deadColour
		if alive {
			colour = aliveColour
		}
		copy(f.Pixels[i*BytesPerPixel:], colour[:])
	}
}
