package render

import (
	"github.com/san-kum/votesim/internal/grid"
)

// PixelSink receives full frames. rgba is row-major, 4 bytes per pixel.
// Sinks may keep rgba; the renderer allocates a new buffer per frame.
type PixelSink interface {
	Present(width, height int, rgba []byte) error
}

type Renderer struct {
	palette Palette
}

func NewRenderer(p Palette) *Renderer {
	return &Renderer{palette: p}
}

func (r *Renderer) Palette() Palette { return r.palette }

// Pixels converts g to an RGBA buffer with opaque alpha.
func (r *Renderer) Pixels(g *grid.WinnerGrid) ([]byte, error) {
	buf := make([]byte, g.Width*g.Height*4)
	for i, w := range g.Cells {
		c, err := r.palette.Color(w)
		if err != nil {
			return nil, err
		}
		o := i * 4
		buf[o+0] = c.R
		buf[o+1] = c.G
		buf[o+2] = c.B
		buf[o+3] = 0xff
	}
	return buf, nil
}

// Render draws g and presents it to sink.
func (r *Renderer) Render(g *grid.WinnerGrid, sink PixelSink) error {
	buf, err := r.Pixels(g)
	if err != nil {
		return err
	}
	return sink.Present(g.Width, g.Height, buf)
}
