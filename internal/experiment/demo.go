package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/plotlab/internal/plot"
)

// Demo is a drawing program that exercises a plot surface.
type Demo interface {
	Name() string
	Describe() string
	Defaults() Defaults
	Draw(ctx context.Context, s *plot.Surface, p Params) error
}

// Defaults are the surface geometry and parameters a demo is designed for.
type Defaults struct {
	Width, Height int
	Levels        int
	Params        Params
}

type Registry struct {
	demos map[string]func() Demo
}

// NewRegistry returns a registry holding the built-in demos.
func NewRegistry() *Registry {
	r := &Registry{demos: make(map[string]func() Demo)}
	r.Add("mandel", func() Demo { return Mandel{} })
	r.Add("henon", func() Demo { return Henon{} })
	r.Add("logistic", func() Demo { return Logistic{} })
	r.Add("ca", func() Demo { return CA{} })
	r.Add("testcard", func() Demo { return TestCard{} })
	return r
}

// Add registers a demo factory under name, replacing any previous one.
func (r *Registry) Add(name string, factory func() Demo) {
	r.demos[name] = factory
}

func (r *Registry) Get(name string) (Demo, error) {
	fn, ok := r.demos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDemo, name)
	}
	return fn(), nil
}

// List returns the demo names in order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
