package driver

import (
	"errors"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/san-kum/plotlab/internal/palette"
	"github.com/san-kum/plotlab/internal/plot"
)

// PNG renders through an anti-aliased 2D context and encodes a PNG on
// finish. Lines are stroked natively at the magnified resolution.
type PNG struct {
	hue bool

	dc     *gg.Context
	pal    color.Palette
	levels int
	mag    float64
	out    io.Writer
	err    error
}

func NewPNG(hue bool) *PNG { return &PNG{hue: hue} }

func (d *PNG) Init(width, height, levels int, opts plot.Options) error {
	d.mag = float64(opts.Mag)
	d.levels = levels
	d.out = opts.Out
	d.pal = palette.For(levels, d.hue)

	d.dc = gg.NewContext(width*opts.Mag, height*opts.Mag)
	d.dc.ClearWithColor(gg.FromColor(d.pal[0]))
	d.dc.SetLineWidth(d.mag)
	d.dc.SetLineCap(gg.LineCapSquare)
	return nil
}

func (d *PNG) ink(v int) color.Color {
	return d.pal[palette.Index(v, d.levels, len(d.pal))]
}

func (d *PNG) Point(x, y, v int) {
	d.dc.SetColor(d.ink(v))
	d.dc.DrawRectangle(float64(x)*d.mag, float64(y)*d.mag, d.mag, d.mag)
	d.keep(d.dc.Fill())
}

func (d *PNG) Line(x1, y1, x2, y2, v int) {
	if x1 == x2 && y1 == y2 {
		d.Point(x1, y1, v)
		return
	}
	c := d.mag / 2
	d.dc.SetColor(d.ink(v))
	d.dc.DrawLine(float64(x1)*d.mag+c, float64(y1)*d.mag+c, float64(x2)*d.mag+c, float64(y2)*d.mag+c)
	d.keep(d.dc.Stroke())
}

func (d *PNG) keep(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *PNG) Finish() error {
	err := d.err
	if err == nil {
		err = d.dc.FlushGPU()
	}
	if err == nil {
		err = d.dc.EncodePNG(d.out)
	}
	return errors.Join(err, d.dc.Close())
}
