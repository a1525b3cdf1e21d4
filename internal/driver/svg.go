package driver

import (
	"github.com/san-kum/plotlab/internal/export"
	"github.com/san-kum/plotlab/internal/palette"
	"github.com/san-kum/plotlab/internal/plot"
)

// SVG streams an SVG document with one element per primitive.
type SVG struct {
	hue bool
	svg *export.SVG
}

func NewSVG(hue bool) *SVG { return &SVG{hue: hue} }

func (d *SVG) Init(width, height, levels int, opts plot.Options) error {
	svg, err := export.NewSVG(opts.Out, width, height, opts.Mag, levels, palette.For(levels, d.hue))
	if err != nil {
		return err
	}
	d.svg = svg
	return nil
}

func (d *SVG) Point(x, y, v int)          { d.svg.Point(x, y, v) }
func (d *SVG) Line(x1, y1, x2, y2, v int) { d.svg.Line(x1, y1, x2, y2, v) }
func (d *SVG) Finish() error              { return d.svg.Close() }
