package plot

import "math"

// Pixel is an integer surface coordinate.
type Pixel struct {
	X, Y int
}

// LinePoints returns the pixels of the digital line from (x1, y1) to
// (x2, y2), both endpoints included. The walk takes max(|dx|, |dy|) + 1
// evenly spaced samples along the segment and rounds each to the nearest
// pixel, so consecutive pixels never leave a gap.
func LinePoints(x1, y1, x2, y2 int) []Pixel {
	if x1 == x2 && y1 == y2 {
		return []Pixel{{x1, y1}}
	}

	n := max(absInt(x2-x1), absInt(y2-y1))
	pts := make([]Pixel, 0, n+1)
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, Pixel{
			X: int(math.Floor(float64(x1) + t*dx + 0.5)),
			Y: int(math.Floor(float64(y1) + t*dy + 0.5)),
		})
	}
	return pts
}

// DrawLine synthesises a line from a point primitive.
func DrawLine(point PointFunc, x1, y1, x2, y2, v int) {
	for _, p := range LinePoints(x1, y1, x2, y2) {
		point(p.X, p.Y, v)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
