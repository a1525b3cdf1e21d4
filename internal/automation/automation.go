package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/plotlab/internal/config"
	"github.com/san-kum/plotlab/internal/experiment"
	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/storage"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScenario = errors.New("automation: scenario has no steps")
	ErrBadSweep      = errors.New("automation: bad sweep")
	ErrUnknownPreset = errors.New("automation: unknown preset")
)

// Scenario is a batch of demo runs executed in order.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one run. Preset fields are applied first and the step's own
// fields override them. A step with a sweep expands into one run per value.
type Step struct {
	config.Config `yaml:",inline"`
	Preset        string `yaml:"preset,omitempty"`
	Sweep         *Sweep `yaml:"sweep,omitempty"`
}

// Sweep varies one parameter linearly over Count values. The step output
// may contain {i} and {v}, replaced by the index and value of each run.
type Sweep struct {
	Param string  `yaml:"param"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Count int     `yaml:"count"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("automation: %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}

	return &scenario, nil
}

// Values returns the parameter values of the sweep.
func (s *Sweep) Values() ([]float64, error) {
	if s.Param == "" {
		return nil, fmt.Errorf("%w: no param", ErrBadSweep)
	}
	if s.Count < 1 {
		return nil, fmt.Errorf("%w: count %d", ErrBadSweep, s.Count)
	}
	if s.Count == 1 {
		return []float64{s.From}, nil
	}
	step := (s.To - s.From) / float64(s.Count-1)
	values := make([]float64, s.Count)
	for i := range values {
		values[i] = s.From + float64(i)*step
	}
	return values, nil
}

// Expand resolves presets and sweeps into the flat list of runs.
func (sc *Scenario) Expand() ([]*config.Config, error) {
	var runs []*config.Config
	for i, step := range sc.Steps {
		base, err := step.resolve()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Sweep == nil {
			runs = append(runs, base)
			continue
		}
		values, err := step.Sweep.Values()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		for j, v := range values {
			run := base.Clone()
			text := strconv.FormatFloat(v, 'g', -1, 64)
			if run.Params == nil {
				run.Params = make(map[string]string, 1)
			}
			run.Params[step.Sweep.Param] = text
			run.Output = strings.NewReplacer("{i}", strconv.Itoa(j), "{v}", text).Replace(run.Output)
			runs = append(runs, run)
		}
	}
	return runs, nil
}

func (s Step) resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		demo, name, ok := strings.Cut(s.Preset, "/")
		if !ok {
			demo, name = s.Demo, s.Preset
		}
		preset := config.GetPreset(demo, name)
		if preset == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, s.Preset)
		}
		cfg = cfg.Overlay(preset)
	}
	cfg = cfg.Overlay(&s.Config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options carries what a batch needs beyond the scenario itself.
type Options struct {
	Demos   *experiment.Registry
	Drivers *plot.Registry
	// Dir is where relative step outputs are written.
	Dir string
	// Store, when set, receives a run record per finished step.
	Store  *storage.Store
	Logger *slog.Logger
}

// RunScenario executes every run of the scenario in order. The first
// failing run stops the batch; results of the runs before it are returned.
func RunScenario(ctx context.Context, scenario *Scenario, opts Options) ([]experiment.Result, error) {
	runs, err := scenario.Expand()
	if err != nil {
		return nil, err
	}
	if opts.Demos == nil {
		opts.Demos = experiment.NewRegistry()
	}
	if opts.Drivers == nil {
		opts.Drivers = plot.DefaultRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = plot.Logger()
	}

	results := make([]experiment.Result, 0, len(runs))
	for i, cfg := range runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		log.Info("batch step", "scenario", scenario.Name, "step", i+1, "of", len(runs),
			"demo", cfg.Demo, "term", cfg.Term, "output", cfg.Output)

		result, err := runOne(ctx, cfg, opts, log)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, *result)
	}

	return results, nil
}

func runOne(ctx context.Context, cfg *config.Config, opts Options, log *slog.Logger) (*experiment.Result, error) {
	demo, err := opts.Demos.Get(cfg.Demo)
	if err != nil {
		return nil, err
	}
	if cfg.Term != "" {
		if _, err := opts.Drivers.Require(cfg.Term); err != nil {
			return nil, err
		}
	}

	ecfg := experiment.Config{
		Demo:       cfg.Demo,
		Term:       cfg.Term,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Levels:     cfg.Levels,
		Mag:        cfg.Mag,
		Inverse:    cfg.Inverse,
		ForceFlush: cfg.ForceFlush,
		Params:     experiment.Params(cfg.Params),
		Registry:   opts.Drivers,
		Logger:     log,
	}

	var out string
	var f io.WriteCloser
	if cfg.Output != "" {
		out = cfg.Output
		if !filepath.IsAbs(out) && opts.Dir != "" {
			out = filepath.Join(opts.Dir, out)
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}
		file, err := os.Create(out)
		if err != nil {
			return nil, err
		}
		f = file
		ecfg.Output = file
	}

	result, err := experiment.New(ecfg, demo).Run(ctx)
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return nil, err
	}

	if opts.Store != nil {
		if _, err := opts.Store.Save(result, out); err != nil {
			return nil, fmt.Errorf("record %s run: %w", result.Demo, err)
		}
	}
	return result, nil
}
