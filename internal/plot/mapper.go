package plot

import "math"

// Range is a logical coordinate window. Xmin maps to the left edge, Ymin to
// the bottom edge; either pair may be reversed to flip an axis.
type Range struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultRange is the identity mapping for a width x height surface with
// row 0 at the top.
func DefaultRange(width, height int) Range {
	return Range{
		Xmin: 0,
		Xmax: float64(width - 1),
		Ymin: float64(height - 1),
		Ymax: 0,
	}
}

// Mapper converts logical coordinates to pixel coordinates.
//
// Conversion truncates toward zero and only the upper edge is clamped: a
// value landing exactly on width (or height) is pulled back to the last
// pixel, anything else outside [0, width) is returned as is so that callers
// can drop it. A degenerate axis (min == max) maps every value to the pixel
// its min would occupy: column 0, row height-1.
type Mapper struct {
	Width, Height int
	Range         Range
}

// X maps a logical x to a pixel column.
func (m Mapper) X(x float64) int {
	return limit(toPixel(m.fx(x), m.Width), m.Width)
}

// Y maps a logical y to a pixel row.
func (m Mapper) Y(y float64) int {
	return limit(toPixel(m.fy(y), m.Height), m.Height)
}

// fx and fy return the unconverted pixel coordinate.
func (m Mapper) fx(x float64) float64 {
	r := m.Range
	if r.Xmax == r.Xmin {
		return 0
	}
	return float64(m.Width) * (x - r.Xmin) / (r.Xmax - r.Xmin)
}

func (m Mapper) fy(y float64) float64 {
	r := m.Range
	if r.Ymax == r.Ymin {
		return float64(m.Height - 1)
	}
	return float64(m.Height) * ((r.Ymin-y)/(r.Ymax-r.Ymin) + 1.0)
}

// Map maps a logical point.
func (m Mapper) Map(x, y float64) (int, int) {
	return m.X(x), m.Y(y)
}

// Segment maps a logical segment and clips it to the surface before
// conversion, so a far endpoint never changes the slope of what is drawn.
// ok is false when no part of the segment is on the surface.
func (m Mapper) Segment(x1, y1, x2, y2 float64) (ax, ay, bx, by int, ok bool) {
	fx1, fy1, fx2, fy2, ok := clip(m.fx(x1), m.fy(y1), m.fx(x2), m.fy(y2),
		float64(m.Width), float64(m.Height))
	if !ok {
		return 0, 0, 0, 0, false
	}
	return limit(int(fx1), m.Width), limit(int(fy1), m.Height),
		limit(int(fx2), m.Width), limit(int(fy2), m.Height), true
}

// Inside reports whether a pixel lies on the surface.
func (m Mapper) Inside(px, py int) bool {
	return px >= 0 && px < m.Width && py >= 0 && py < m.Height
}

// toPixel truncates toward zero. Values that cannot be represented, or lie
// well beyond the surface, become off-surface sentinels.
func toPixel(f float64, size int) int {
	switch {
	case math.IsNaN(f), f <= -1:
		return -1
	case f >= float64(size)+1:
		return size + 1
	}
	return int(f)
}

func limit(p, size int) int {
	if p == size {
		return p - 1
	}
	return p
}

// clip is Liang-Barsky against the closed box [0, xmax] x [0, ymax].
// Endpoints already inside are returned unchanged.
func clip(x1, y1, x2, y2, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	for _, f := range [4]float64{x1, y1, x2, y2} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, 0, 0, 0, false
		}
	}

	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1},
		{dx, xmax - x1},
		{-dy, y1},
		{dy, ymax - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}

	cx1, cy1, cx2, cy2 := x1, y1, x2, y2
	if t0 > 0 {
		cx1, cy1 = x1+t0*dx, y1+t0*dy
	}
	if t1 < 1 {
		cx2, cy2 = x1+t1*dx, y1+t1*dy
	}
	// guard against rounding just past an edge
	cx1, cx2 = min(max(cx1, 0), xmax), min(max(cx2, 0), xmax)
	cy1, cy2 = min(max(cy1, 0), ymax), min(max(cy2, 0), ymax)
	return cx1, cy1, cx2, cy2, true
}
