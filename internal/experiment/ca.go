package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/san-kum/plotlab/internal/plot"
)

// CA draws a one-dimensional totalistic cellular automaton, one generation
// per row. The rule table maps every neighbourhood sum, from 0 up to
// (states-1)*(2*radius+1), to the next state of the centre cell.
type CA struct{}

func (CA) Name() string     { return "ca" }
func (CA) Describe() string { return "1-D totalistic cellular automaton, one generation per row" }

func (CA) Defaults() Defaults {
	return Defaults{
		Width:  640,
		Height: 480,
		Levels: 2,
		Params: Params{
			"states": "2",
			"radius": "1",
			"rules":  "0110",
			"init":   "11",
			"wrap":   "true",
			"seed":   "0",
			"binary": "false",
		},
	}
}

func (CA) Draw(ctx context.Context, s *plot.Surface, p Params) error {
	r := reader{p: p}
	states := r.int("states", 2)
	radius := r.int("radius", 1)
	wrap := r.bool("wrap", true)
	seed := r.int("seed", 0)
	binary := r.bool("binary", false)
	if r.err != nil {
		return r.err
	}
	if states < 2 || states > 10 {
		return &ParamError{Key: "states", Value: strconv.Itoa(states), Err: fmt.Errorf("must be in [2, 10]")}
	}
	if radius < 1 {
		return &ParamError{Key: "radius", Value: strconv.Itoa(radius), Err: fmt.Errorf("must be positive")}
	}
	rules, err := parseRules(p.Text("rules", "0110"), states, radius)
	if err != nil {
		return err
	}

	width := s.Width()
	// Padding of radius+1 cells on each side holds the wrapped neighbours
	// and lets the running sum start one cell early.
	n := width + 2*radius + 2
	cur := make([]int, n)
	next := make([]int, n)

	init := p.Text("init", "11")
	if strings.HasPrefix(init, "-") {
		odds, err := strconv.Atoi(init[1:])
		if err != nil || odds < 1 {
			return &ParamError{Key: "init", Value: init, Err: fmt.Errorf("want -N with N >= 1")}
		}
		rng := rand.New(rand.NewSource(int64(seed)))
		for i := radius + 1; i < width+radius+1; i++ {
			if rng.Intn(odds) == 0 {
				cur[i] = rng.Intn(states-1) + 1
			}
		}
	} else {
		start := (width-len(init))/2 + radius + 1
		for j, c := range init {
			v := int(c - '0')
			if v < 0 || v >= states {
				return &ParamError{Key: "init", Value: init, Err: fmt.Errorf("cell %q out of range", c)}
			}
			if i := start + j; i >= radius+1 && i < width+radius+1 {
				cur[i] = v
			}
		}
	}

	for row := 0; row < s.Height(); row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if wrap {
			for j := 0; j < radius; j++ {
				cur[j+1] = cur[width+1+j]
				cur[width+radius+1+j] = cur[radius+1+j]
			}
		}

		sum := 0
		for j := 0; j < 2*radius+1; j++ {
			sum += cur[j]
		}
		for j := radius + 1; j < width+radius+1; j++ {
			sum += cur[j+radius] - cur[j-radius-1]
			next[j] = rules[sum]
			v := cur[j]
			if binary && v > 0 {
				v = 1
			}
			s.Point(float64(j-radius-1), float64(row), v)
		}
		cur, next = next, cur
	}
	return nil
}

func parseRules(text string, states, radius int) ([]int, error) {
	want := (states-1)*(2*radius+1) + 1
	if len(text) != want {
		return nil, &ParamError{Key: "rules", Value: text, Err: fmt.Errorf("length should be %d not %d", want, len(text))}
	}
	rules := make([]int, want)
	for i, c := range text {
		v := int(c - '0')
		if v < 0 || v >= states {
			return nil, &ParamError{Key: "rules", Value: text, Err: fmt.Errorf("state %q out of range", c)}
		}
		rules[i] = v
	}
	return rules, nil
}

// Levels is the number of levels the automaton needs: one per state, or two
// when only live and dead cells are distinguished.
func (CA) Levels(p Params) int {
	if b, err := p.Bool("binary", false); err == nil && b {
		return 2
	}
	if n, err := p.Int("states", 2); err == nil && n >= 2 {
		return n
	}
	return 2
}
