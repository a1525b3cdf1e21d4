// Package analysis characterises one-parameter maps of the unit interval.
//
//   - [Orbit]: the attractor points visited after a transient
//   - [Lyapunov]: the exponent by trajectory separation
//
// A positive exponent indicates chaos:
//
//	if analysis.Lyapunov(f, r, 0.5, 500, 2000, 1e-9) > 0 {
//	    // chaotic at r
//	}
package analysis
