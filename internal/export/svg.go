package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/san-kum/plotlab/internal/palette"
)

// SVG streams an SVG document: one rect per point and one line per segment,
// coloured through a palette. Coordinates are pixel centres scaled by mag.
type SVG struct {
	w      *bufio.Writer
	pal    color.Palette
	levels int
	mag    float64
	err    error
}

// NewSVG writes the document header and a black background.
func NewSVG(w io.Writer, width, height, mag, levels int, pal color.Palette) (*SVG, error) {
	if mag < 1 {
		mag = 1
	}
	s := &SVG{
		w:      bufio.NewWriter(w),
		pal:    pal,
		levels: levels,
		mag:    float64(mag),
	}
	s.printf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, width*mag, height*mag, width*mag, height*mag, palette.Hex(pal[0]))
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

func (s *SVG) fill(v int) string {
	return palette.Hex(s.pal[palette.Index(v, s.levels, len(s.pal))])
}

// Point emits a one-pixel square.
func (s *SVG) Point(x, y, v int) {
	s.printf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>
`, float64(x)*s.mag, float64(y)*s.mag, s.mag, s.mag, s.fill(v))
}

// Line emits a segment between pixel centres.
func (s *SVG) Line(x1, y1, x2, y2, v int) {
	c := (s.mag) / 2
	s.printf(`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g" stroke-linecap="square"/>
`, float64(x1)*s.mag+c, float64(y1)*s.mag+c, float64(x2)*s.mag+c, float64(y2)*s.mag+c, s.fill(v), s.mag)
}

// Close ends the document and flushes.
func (s *SVG) Close() error {
	s.printf("</svg>\n")
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func (s *SVG) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
