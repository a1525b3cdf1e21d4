package analysis

import "math"

// Map is a one-parameter map, x -> f(x, r).
type Map func(x, r float64) float64

// Orbit iterates f from x0, discards skip transient steps and returns up
// to n further points. It stops early once the orbit comes within tol of
// one of its last four points, since a cycle of period four or less adds
// nothing new.
func Orbit(f Map, r, x0 float64, skip, n int, tol float64) []float64 {
	x := x0
	for j := 0; j < skip; j++ {
		x = f(x, r)
	}

	out := make([]float64, 0, min(max(n, 0), 64))
	prev := [4]float64{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)}
	for j := 0; j < n; j++ {
		prev[3], prev[2], prev[1], prev[0] = prev[2], prev[1], prev[0], x
		x = f(x, r)
		out = append(out, x)
		if near(x, prev, tol) {
			break
		}
	}
	return out
}

func near(x float64, prev [4]float64, tol float64) bool {
	for _, p := range prev {
		if math.Abs(x-p) < tol {
			return true
		}
	}
	return false
}
