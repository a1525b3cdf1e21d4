package analysis

import "math"

// Lyapunov estimates the exponent of f at r by trajectory separation: two
// orbits d0 apart are stepped together and their distance renormalised to
// d0 after every step. λ ≈ mean(ln(|δ|/d0)).
func Lyapunov(f Map, r, x0 float64, skip, n int, d0 float64) float64 {
	if n <= 0 || d0 <= 0 {
		return 0
	}

	x := x0
	for j := 0; j < skip; j++ {
		x = f(x, r)
	}
	xp := x + d0

	sumLog := 0.0
	count := 0
	for j := 0; j < n; j++ {
		x = f(x, r)
		xp = f(xp, r)

		sep := math.Abs(xp - x)
		if sep == 0 {
			// Collapsed below float resolution: contract as hard as a
			// double can express and restart the separation.
			sumLog += math.Log(math.SmallestNonzeroFloat64 / d0)
			count++
			xp = x + d0
			continue
		}
		sumLog += math.Log(sep / d0)
		count++
		xp = x + (xp-x)*d0/sep
	}

	return sumLog / float64(count)
}
