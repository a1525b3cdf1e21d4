package experiment

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/plotlab/internal/plot"
)

// Config selects a demo and the surface it draws on. Zero geometry fields
// take the demo's defaults.
type Config struct {
	Demo       string
	Term       string
	Width      int
	Height     int
	Levels     int
	Mag        int
	Inverse    bool
	ForceFlush bool
	Output     io.Writer
	Params     Params

	// Registry overrides the process-wide driver registry.
	Registry *plot.Registry
	Logger   *slog.Logger
}

// Result describes a finished run.
type Result struct {
	Demo    string
	Driver  string
	Width   int
	Height  int
	Levels  int
	Mag     int
	Inverse bool
	Params  Params
	Elapsed time.Duration
}

// LevelHinter is implemented by demos whose level count depends on their
// parameters.
type LevelHinter interface {
	Levels(p Params) int
}

type Experiment struct {
	cfg  Config
	demo Demo
}

func New(cfg Config, demo Demo) *Experiment {
	return &Experiment{cfg: cfg, demo: demo}
}

// Resolved returns the configuration with demo defaults filled in.
func (e *Experiment) Resolved() Config {
	cfg := e.cfg
	def := e.demo.Defaults()
	cfg.Demo = e.demo.Name()
	cfg.Params = def.Params.Merge(cfg.Params)
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Levels <= 0 {
		cfg.Levels = def.Levels
		if h, ok := e.demo.(LevelHinter); ok {
			cfg.Levels = h.Levels(cfg.Params)
		}
	}
	if cfg.Mag <= 0 {
		cfg.Mag = 1
	}
	return cfg
}

// Run opens the surface, draws the demo on it and finishes it.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	cfg := e.Resolved()

	opts := []plot.Option{
		plot.WithMag(cfg.Mag),
		plot.WithInverse(cfg.Inverse),
		plot.WithForceFlush(cfg.ForceFlush),
	}
	if cfg.Output != nil {
		opts = append(opts, plot.WithOutput(cfg.Output))
	}
	if cfg.Registry != nil {
		opts = append(opts, plot.WithRegistry(cfg.Registry))
	}
	if cfg.Logger != nil {
		opts = append(opts, plot.WithLogger(cfg.Logger))
	}

	s, err := plot.Open(cfg.Width, cfg.Height, cfg.Levels, cfg.Term, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.Run(ctx, func(ctx context.Context, s *plot.Surface) error {
		return e.demo.Draw(ctx, s, cfg.Params)
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Demo:    cfg.Demo,
		Driver:  s.Driver(),
		Width:   cfg.Width,
		Height:  cfg.Height,
		Levels:  cfg.Levels,
		Mag:     cfg.Mag,
		Inverse: cfg.Inverse,
		Params:  cfg.Params,
		Elapsed: time.Since(start),
	}, nil
}
