package experiment

import (
	"context"

	"github.com/san-kum/plotlab/internal/plot"
)

// TestCard exercises every surface primitive: a level ramp, both
// diagonals, nested boxes and a dot grid, all in the unit square.
type TestCard struct{}

func (TestCard) Name() string     { return "testcard" }
func (TestCard) Describe() string { return "test pattern touching every primitive" }

func (TestCard) Defaults() Defaults {
	return Defaults{
		Width:  256,
		Height: 192,
		Levels: 16,
		Params: Params{
			"grid":  "8",
			"boxes": "3",
		},
	}
}

func (TestCard) Draw(ctx context.Context, s *plot.Surface, p Params) error {
	r := reader{p: p}
	grid := max(r.int("grid", 8), 1)
	boxes := r.int("boxes", 3)
	if r.err != nil {
		return r.err
	}

	levels := s.Levels()
	s.SetAll(0)
	s.SetRange(0, 1, 0, 1)

	// Level ramp across the lower half, one vertical line per column.
	cols := s.Width()
	for i := 0; i < cols; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		x := float64(i) / float64(max(cols-1, 1))
		s.Line(x, 0, x, 0.5, i*levels/cols)
	}

	s.Line(0, 0, 1, 1, levels-1)
	s.Line(0, 1, 1, 0, levels-1)

	for i := 1; i <= boxes; i++ {
		m := float64(i) / float64(2*(boxes+1))
		s.Box(m, 1-m, 1-m, m, 1)
	}

	for gy := 0; gy <= grid; gy++ {
		for gx := 0; gx <= grid; gx++ {
			s.Point(float64(gx)/float64(grid), float64(gy)/float64(grid), levels/2)
		}
	}
	return ctx.Err()
}
