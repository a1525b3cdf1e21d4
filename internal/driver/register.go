package driver

import (
	"log/slog"

	"github.com/san-kum/plotlab/internal/plot"
)

// Default selection priorities.
const (
	PriorityWindow = 100
	PriorityTerm   = 50
	PriorityFile   = 10
	PriorityNone   = 0
)

type backend struct {
	name      string
	priority  int
	desc      string
	factory   plot.Factory
	available func() bool
}

func backends() []backend {
	file := func(name, desc string, f plot.Factory) backend {
		return backend{name: name, priority: PriorityFile, desc: desc, factory: f}
	}
	window := func(name string, hue bool) backend {
		desc := "desktop window, gray ramp"
		if hue {
			desc = "desktop window, hue ramp"
		}
		return backend{
			name:      name,
			priority:  PriorityWindow,
			desc:      desc,
			factory:   func() plot.Driver { return NewWindow(hue) },
			available: WindowAvailable,
		}
	}

	list := []backend{
		{name: "none", priority: PriorityNone, desc: "discard all output", factory: func() plot.Driver { return None{} }},
		// pgm edges out the other file formats as the headless default.
		{name: "pgm", priority: PriorityFile + 1, desc: "binary graymap (P5)", factory: func() plot.Driver { return NewPGM() }},
		file("raw", "x y value text lines", func() plot.Driver { return NewRaw() }),
		file("ps", "encapsulated PostScript, vector", func() plot.Driver { return &PostScript{} }),
		file("svg", "SVG document, gray ramp", func() plot.Driver { return NewSVG(false) }),
		file("Svg", "SVG document, hue ramp", func() plot.Driver { return NewSVG(true) }),
		file("png", "anti-aliased PNG, gray ramp", func() plot.Driver { return NewPNG(false) }),
		file("PNG", "anti-aliased PNG, hue ramp", func() plot.Driver { return NewPNG(true) }),
		file("bmp", "BMP image, gray ramp", func() plot.Driver { return NewBMP(false) }),
		file("BMP", "BMP image, hue ramp", func() plot.Driver { return NewBMP(true) }),
		file("tiff", "TIFF image, gray ramp", func() plot.Driver { return NewTIFF(false) }),
		file("TIFF", "TIFF image, hue ramp", func() plot.Driver { return NewTIFF(true) }),
		file("gif", "GIF image, gray ramp", func() plot.Driver { return NewGIF(false) }),
		file("GIF", "GIF image, hue ramp", func() plot.Driver { return NewGIF(true) }),
		file("braille", "braille text, monochrome", func() plot.Driver { return &Braille{} }),
		{
			name: "term", priority: PriorityTerm, desc: "live terminal view, gray ramp",
			factory: func() plot.Driver { return NewTerm(false) }, available: TermAvailable,
		},
		{
			name: "Term", priority: PriorityTerm, desc: "live terminal view, hue ramp",
			factory: func() plot.Driver { return NewTerm(true) }, available: TermAvailable,
		},
	}
	for _, name := range []string{"window", "x11", "win", "mac"} {
		list = append(list, window(name, false))
	}
	for _, name := range []string{"Window", "X11", "Win", "Mac"} {
		list = append(list, window(name, true))
	}
	return list
}

// descriptions holds a one-line summary per registered name.
var descriptions = map[string]string{}

func init() {
	RegisterAll(plot.DefaultRegistry())
}

// RegisterAll adds every backend to r.
func RegisterAll(r *plot.Registry) {
	for _, b := range backends() {
		r.Register(b.name, b.priority, b.factory, b.available)
		descriptions[b.name] = b.desc
	}
}

// Description returns the summary of a registered backend.
func Description(name string) string {
	d := descriptions[name]
	if !windowBuilt && isWindowName(name) {
		d += " (needs -tags ebiten)"
	}
	return d
}

func isWindowName(name string) bool {
	switch name {
	case "window", "x11", "win", "mac", "Window", "X11", "Win", "Mac":
		return true
	}
	return false
}

func logger(opts plot.Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return plot.Logger()
}
