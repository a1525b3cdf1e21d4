// Package palette builds the colour ramps interactive and image drivers use
// to display level values.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxEntries is the largest ramp a driver allocates.
const MaxEntries = 256

// Mono is the two-entry ramp used for two-level surfaces.
func Mono() color.Palette {
	return color.Palette{color.Gray{Y: 0}, color.Gray{Y: 255}}
}

// Gray returns an n-entry ramp from black to white.
func Gray(n int) color.Palette {
	n = clampEntries(n)
	p := make(color.Palette, n)
	for i := range p {
		p[i] = color.Gray{Y: uint8(math.Floor(255*float64(i)/float64(n-1) + 0.5))}
	}
	return p
}

// Hue returns an n-entry ramp whose first entry is black and whose remaining
// entries rotate through the hue circle.
func Hue(n int) color.Palette {
	n = clampEntries(n)
	p := make(color.Palette, n)
	p[0] = color.RGBA{A: 255}
	for i := 1; i < n; i++ {
		p[i] = HueColor(float64(i) / float64(n-1))
	}
	return p
}

// HueColor converts a hue in [0, 1] to a fully saturated colour.
func HueColor(h float64) color.RGBA {
	return color.RGBA{
		R: channel(h + 2.0/6),
		G: channel(h),
		B: channel(h - 2.0/6),
		A: 255,
	}
}

func channel(h float64) uint8 {
	h -= math.Floor(h)
	var v float64
	switch {
	case h < 1.0/6:
		v = 6 * h
	case h < 0.5:
		v = 1
	case h < 4.0/6:
		v = 4 - 6*h
	default:
		v = 0
	}
	return uint8(255*v + 0.5)
}

// For picks the ramp for a surface: Mono for two levels, otherwise a hue
// ramp when color is set and a gray ramp when it is not. The ramp never
// exceeds MaxEntries.
func For(levels int, color bool) color.Palette {
	if levels <= 2 {
		return Mono()
	}
	n := min(levels, MaxEntries)
	if color {
		return Hue(n)
	}
	return Gray(n)
}

// Index maps a level in [0, levels-1] onto a ramp of n entries.
func Index(v, levels, n int) int {
	if levels < 2 || n < 1 {
		return 0
	}
	if v <= 0 {
		return 0
	}
	if v >= levels-1 {
		return n - 1
	}
	return int(float64(v)/float64(levels-1)*float64(n-1) + 0.5)
}

// Hex formats a palette entry as #rrggbb. A fully transparent colour has no
// recoverable RGB and formats as black.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

func clampEntries(n int) int {
	if n < 2 {
		return 2
	}
	if n > MaxEntries {
		return MaxEntries
	}
	return n
}
