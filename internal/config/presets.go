package config

import (
	"sort"
)

var Presets = map[string]map[string]*Config{
	"mandel": {
		"full": {
			Demo: "mandel", Width: 640, Height: 480, Levels: 256,
		},
		"seahorse": {
			Demo: "mandel", Width: 640, Height: 480, Levels: 256,
			Params: map[string]string{"ulx": "-0.80", "uly": "0.20", "lly": "0.05", "maxit": "400"},
		},
		"banded": {
			Demo: "mandel", Width: 640, Height: 480, Levels: 64,
			Params: map[string]string{"idiv": "4", "rev": "true"},
		},
		"boxed": {
			Demo: "mandel", Width: 640, Height: 480, Levels: 256,
			Params: map[string]string{"box": "2", "bulx": "-0.80", "buly": "0.20", "blly": "0.05"},
		},
	},
	"henon": {
		"classic": {
			Demo: "henon", Width: 480, Height: 480,
			Params: map[string]string{"A": "1.4", "B": "0.3", "points": "20000"},
		},
		"dense": {
			Demo: "henon", Width: 480, Height: 480,
			Params: map[string]string{"points": "100000", "skip": "1000"},
		},
	},
	"logistic": {
		"full": {
			Demo: "logistic", Width: 640, Height: 480,
		},
		"chaos": {
			Demo: "logistic", Width: 640, Height: 480,
			Params: map[string]string{"rmin": "0.85", "rmax": "1.0", "factor": "4"},
		},
		"sine": {
			Demo: "logistic", Width: 640, Height: 480,
			Params: map[string]string{"func": "sin"},
		},
	},
	"ca": {
		"default": {
			Demo: "ca", Width: 640, Height: 480,
		},
		"random": {
			Demo: "ca", Width: 640, Height: 480,
			Params: map[string]string{"init": "-3", "seed": "42"},
		},
		"three": {
			Demo: "ca", Width: 640, Height: 480, Term: "PNG",
			Params: map[string]string{"states": "3", "rules": "0120210", "init": "-2", "seed": "7"},
		},
	},
	"testcard": {
		"small": {
			Demo: "testcard", Width: 128, Height: 96, Levels: 8,
		},
		"hue": {
			Demo: "testcard", Width: 256, Height: 192, Levels: 16, Term: "PNG", Mag: 2,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(demo, preset string) *Config {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	cfg, ok := demoPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names of a demo in order, or nil.
func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
