package driver

import (
	"io"

	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/viz"
)

// Braille renders a monochrome text image, one braille cell per 2x4 block
// of magnified pixels. Level 0 is blank and any other level is ink.
type Braille struct {
	canvas *viz.Canvas
	mag    int
	out    io.Writer
}

func (d *Braille) Init(width, height, levels int, opts plot.Options) error {
	d.mag = opts.Mag
	d.out = opts.Out
	d.canvas = viz.CanvasFor(width*opts.Mag, height*opts.Mag)
	return nil
}

func (d *Braille) Point(x, y, v int) {
	for dy := 0; dy < d.mag; dy++ {
		for dx := 0; dx < d.mag; dx++ {
			if v > 0 {
				d.canvas.Set(x*d.mag+dx, y*d.mag+dy)
			} else {
				d.canvas.Unset(x*d.mag+dx, y*d.mag+dy)
			}
		}
	}
}

func (d *Braille) Finish() error {
	_, err := d.canvas.WriteTo(d.out)
	return err
}
