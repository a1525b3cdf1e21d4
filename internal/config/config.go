package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDemo = "mandel"
	DefaultMag  = 1
)

// Config is a run description as stored on disk. Zero geometry fields
// defer to the demo's own defaults; an empty term selects the platform
// default driver.
type Config struct {
	Demo       string            `yaml:"demo"`
	Term       string            `yaml:"term,omitempty"`
	Width      int               `yaml:"width,omitempty"`
	Height     int               `yaml:"height,omitempty"`
	Levels     int               `yaml:"levels,omitempty"`
	Mag        int               `yaml:"mag"`
	Inverse    bool              `yaml:"inverse"`
	ForceFlush bool              `yaml:"force_flush,omitempty"`
	Output     string            `yaml:"output,omitempty"`
	Theme      string            `yaml:"theme,omitempty"`
	Params     map[string]string `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Demo: DefaultDemo,
		Mag:  DefaultMag,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields a surface cannot be opened with.
func (c *Config) Validate() error {
	switch {
	case c.Demo == "":
		return fmt.Errorf("demo is required")
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("negative size %dx%d", c.Width, c.Height)
	case c.Levels == 1 || c.Levels < 0:
		return fmt.Errorf("levels must be at least 2, got %d", c.Levels)
	case c.Mag < 1:
		return fmt.Errorf("mag must be at least 1, got %d", c.Mag)
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Params = maps.Clone(c.Params)
	return &out
}

// Overlay copies the non-zero fields of o onto a copy of c. Params are
// merged key by key.
func (c *Config) Overlay(o *Config) *Config {
	out := c.Clone()
	if o.Demo != "" {
		out.Demo = o.Demo
	}
	if o.Term != "" {
		out.Term = o.Term
	}
	if o.Width > 0 {
		out.Width = o.Width
	}
	if o.Height > 0 {
		out.Height = o.Height
	}
	if o.Levels > 0 {
		out.Levels = o.Levels
	}
	if o.Mag > 0 {
		out.Mag = o.Mag
	}
	out.Inverse = out.Inverse || o.Inverse
	out.ForceFlush = out.ForceFlush || o.ForceFlush
	if o.Output != "" {
		out.Output = o.Output
	}
	if o.Theme != "" {
		out.Theme = o.Theme
	}
	if len(o.Params) > 0 {
		if out.Params == nil {
			out.Params = make(map[string]string, len(o.Params))
		}
		maps.Copy(out.Params, o.Params)
	}
	return out
}
