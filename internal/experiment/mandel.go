package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/plotlab/internal/compute"
	"github.com/san-kum/plotlab/internal/plot"
)

const mandelBand = 32

// Mandel draws the Mandelbrot set by escape time. The view is fixed by the
// upper-left corner and the lower y so both axes share one scale.
type Mandel struct{}

func (Mandel) Name() string { return "mandel" }

func (Mandel) Describe() string {
	return "Mandelbrot set, escape-time coloring with optional banding"
}

func (Mandel) Defaults() Defaults {
	return Defaults{
		Width:  640,
		Height: 480,
		Levels: 256,
		Params: Params{
			"maxit":   "160",
			"bail":    "16",
			"ulx":     "-2.4",
			"uly":     "1.4",
			"lly":     "-1.4",
			"idiv":    "1",
			"rev":     "false",
			"box":     "0",
			"workers": "0",
		},
	}
}

func (Mandel) Draw(ctx context.Context, s *plot.Surface, p Params) error {
	r := reader{p: p}
	maxit := r.int("maxit", 160)
	bail := r.float("bail", 16)
	ulx := r.float("ulx", -2.4)
	uly := r.float("uly", 1.4)
	lly := r.float("lly", -1.4)
	idiv := r.int("idiv", 1)
	rev := r.bool("rev", false)
	box := r.int("box", 0)
	bulx := r.float("bulx", 0)
	buly := r.float("buly", 0)
	blly := r.float("blly", 0)
	workers := r.int("workers", 0)
	if r.err != nil {
		return r.err
	}
	if idiv < 1 {
		return &ParamError{Key: "idiv", Value: p.Text("idiv", ""), Err: fmt.Errorf("must be at least 1")}
	}

	width, height, levels := s.Width(), s.Height(), s.Levels()
	s.SetAll(0)

	// Escape counts are computed a band at a time on the pool, then drawn
	// in row order so progressive drivers still fill top to bottom.
	pool := compute.NewPool(workers)
	inc := (uly - lly) / float64(max(height-1, 1))
	counts := make([]int, mandelBand*width)
	for j0 := 0; j0 < height; j0 += mandelBand {
		j1 := min(j0+mandelBand, height)
		err := pool.Rows(ctx, j0, j1, func(j int) {
			y := uly - float64(j)*inc
			row := counts[(j-j0)*width : (j-j0+1)*width]
			for i := range row {
				row[i] = escape(ulx+float64(i)*inc, y, maxit, bail)
			}
		})
		if err != nil {
			return err
		}

		for j := j0; j < j1; j++ {
			for i, k := range counts[(j-j0)*width : (j-j0+1)*width] {
				if k == 0 {
					continue
				}
				c := (k/idiv + (k%idiv)*(levels/idiv)) % levels
				if rev {
					c = levels - 1 - c
				}
				s.Point(float64(i), float64(j), c)
			}
		}
	}

	// The overlay is drawn un-inverted so it stays legible.
	s.SetInverse(false)
	if box > 0 {
		binc := (buly - blly) / float64(max(height-1, 1))
		s.Box((bulx-ulx)/inc, (uly-buly)/inc,
			(bulx+float64(width)*binc-ulx)/inc,
			(uly+float64(height)*binc-buly)/inc, box)
	}
	return nil
}

// escape returns the iteration at which z escapes the bail radius, or 0
// when it stays bounded for maxit iterations.
func escape(x, y float64, maxit int, bail float64) int {
	a, b := x, y
	for k := 1; k <= maxit; k++ {
		u, v := a*a, b*b
		w := 2 * a * b
		a = u - v + x
		b = w + y
		if u+v > bail {
			return k
		}
	}
	return 0
}
