package experiment

import (
	"context"
	"math/rand"

	"github.com/san-kum/plotlab/internal/plot"
)

// Henon plots the phase space of x(t+1) = A - x(t)^2 + B*x(t-1) against a
// delayed copy of itself.
type Henon struct{}

func (Henon) Name() string     { return "henon" }
func (Henon) Describe() string { return "Henon attractor in delay coordinates" }

func (Henon) Defaults() Defaults {
	return Defaults{
		Width:  480,
		Height: 480,
		Levels: 2,
		Params: Params{
			"A":      "1.29",
			"B":      "0.3",
			"skip":   "100",
			"points": "1000",
			"delay":  "1",
			"swap":   "true",
			"ulx":    "-1.75",
			"uly":    "1.75",
			"lly":    "-1.75",
			"seed":   "1",
		},
	}
}

func (Henon) Draw(ctx context.Context, s *plot.Surface, p Params) error {
	r := reader{p: p}
	a := r.float("A", 1.29)
	b := r.float("B", 0.3)
	skip := r.int("skip", 100)
	points := r.int("points", 1000)
	delay := max(r.int("delay", 1), 1)
	swap := r.bool("swap", true)
	ulx := r.float("ulx", -1.75)
	uly := r.float("uly", 1.75)
	lly := r.float("lly", -1.75)
	seed := r.int("seed", 1)
	box := r.int("box", 0)
	bulx := r.float("bulx", 0)
	buly := r.float("buly", 0)
	blly := r.float("blly", 0)
	if r.err != nil {
		return r.err
	}

	// Square pixels: the x extent follows from the y extent.
	lrx := ulx + (uly-lly)/float64(max(s.Height()-1, 1))*float64(s.Width()-1)
	s.SetRange(ulx, lrx, lly, uly)
	s.SetAll(0)

	rng := rand.New(rand.NewSource(int64(seed)))
	x := -0.1 + 0.2*rng.Float64()
	y := -0.1 + 0.2*rng.Float64()
	hold := make([]float64, delay)
	h := 0

	for i := 0; i < points+skip+delay; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		hold[h] = x
		h = (h + 1) % delay
		x, y = a-x*x+b*y, x

		px, py := x, hold[h]
		if swap {
			px, py = hold[h], x
		}
		if i >= skip+delay && px > ulx && px < lrx && py > lly && py < uly {
			s.Point(px, py, 1)
		}
	}

	s.SetInverse(false)
	if box > 0 {
		blrx := bulx + (buly-blly)/float64(max(s.Height()-1, 1))*float64(s.Width()-1)
		s.Box(bulx, buly, blrx, blly, box)
	}
	return nil
}
