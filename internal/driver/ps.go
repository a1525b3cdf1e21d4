package driver

import (
	"github.com/san-kum/plotlab/internal/export"
	"github.com/san-kum/plotlab/internal/plot"
)

// PostScript streams an EPS document as primitives arrive. Colour values are
// ignored: every point and segment is stroked in the default ink.
type PostScript struct {
	ps *export.PostScript
}

func (d *PostScript) Init(width, height, levels int, opts plot.Options) error {
	ps, err := export.NewPostScript(opts.Out, width, height, opts.Mag)
	if err != nil {
		return err
	}
	d.ps = ps
	return nil
}

func (d *PostScript) Point(x, y, _ int) {
	d.ps.Point(x, y)
}

func (d *PostScript) Line(x1, y1, x2, y2, _ int) {
	d.ps.Line(x1, y1, x2, y2)
}

func (d *PostScript) Finish() error {
	return d.ps.Close()
}
