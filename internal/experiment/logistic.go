package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/plotlab/internal/analysis"
	"github.com/san-kum/plotlab/internal/plot"
)

// maps1D are the one-dimensional maps the bifurcation diagram can iterate.
// Both send [0, 1] into itself for r in [0, 1].
var maps1D = map[string]analysis.Map{
	"log": func(x, r float64) float64 { return 4 * r * x * (1 - x) },
	"sin": func(x, r float64) float64 { return r * math.Sin(math.Pi*x) },
}

// Logistic draws the bifurcation diagram of a one-dimensional map, one
// column per value of r.
type Logistic struct{}

func (Logistic) Name() string     { return "logistic" }
func (Logistic) Describe() string { return "bifurcation diagram of the logistic (or sine) map" }

func (Logistic) Defaults() Defaults {
	return Defaults{
		Width:  640,
		Height: 480,
		Levels: 2,
		Params: Params{
			"func":   "log",
			"rmin":   "0",
			"rmax":   "1",
			"ymin":   "0",
			"ymax":   "1",
			"skip":   "500",
			"factor": "2",
			"lyap":   "false",
		},
	}
}

func (Logistic) Draw(ctx context.Context, s *plot.Surface, p Params) error {
	rd := reader{p: p}
	rmin := clamp01(rd.float("rmin", 0))
	rmax := clamp01(rd.float("rmax", 1))
	ymin := rd.float("ymin", 0)
	ymax := rd.float("ymax", 1)
	skip := rd.int("skip", 500)
	factor := rd.float("factor", 2)
	box := rd.int("box", 0)
	lyap := rd.bool("lyap", false)
	brmin := rd.float("brmin", 0)
	brmax := rd.float("brmax", 0)
	bymin := rd.float("bymin", 0)
	bymax := rd.float("bymax", 0)
	if rd.err != nil {
		return rd.err
	}
	name := p.Text("func", "log")
	f, ok := maps1D[name]
	if !ok {
		return &ParamError{Key: "func", Value: name, Err: fmt.Errorf("want log or sin")}
	}

	width, height := s.Width(), s.Height()
	s.SetAll(0)
	s.SetRange(rmin, rmax, ymin, ymax)

	rinc := (rmax - rmin) / float64(max(width-1, 1))
	tol := 0.01 / float64(height)
	steps := int(float64(height) * factor)

	r := rmin
	for i := 0; i < width; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r = min(r, 1)
		for _, x := range analysis.Orbit(f, r, 0.5, skip, steps, tol) {
			s.Point(r, x, 1)
		}
		r += rinc
	}

	if lyap {
		if err := drawLyapunov(ctx, s, f, rmin, rinc, ymin, ymax, skip, steps); err != nil {
			return err
		}
	}

	s.SetInverse(false)
	if box > 0 {
		s.Box(brmin, bymax, brmax, bymin, box)
	}
	return nil
}

// drawLyapunov overlays the exponent as a polyline, mapping [-1, 1] onto
// the vertical range.
func drawLyapunov(ctx context.Context, s *plot.Surface, f analysis.Map, rmin, rinc, ymin, ymax float64, skip, steps int) error {
	px, py := 0.0, 0.0
	r := rmin
	for i := 0; i < s.Width(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r = min(r, 1)
		l := analysis.Lyapunov(f, r, 0.5, skip, max(steps, 100), 1e-9)
		y := ymin + (ymax-ymin)*(min(max(l, -1), 1)+1)/2
		if i > 0 {
			s.Line(px, py, r, y, 1)
		}
		px, py = r, y
		r += rinc
	}
	return nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
