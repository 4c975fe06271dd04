// Package quadrature approximates one-dimensional definite integrals
// ∫_a^b f(x) dx with classical fixed-order rules.
//
// 🚀 What is a quadrature rule?
//
//	A formula that replaces the integral by a weighted sum of samples
//	of f at chosen nodes. Composite rules split [a,b] into n equal
//	subintervals of width h = (b-a)/n and apply a low-order formula
//	on each piece; Gauss–Legendre rules pick nodes and weights on
//	[-1,1] that maximize polynomial exactness for a given point count.
//
// ✨ Rules on offer:
//   - Trapezoidal — n+1 samples, error O(h²), exact for degree ≤ 1
//   - Simpson     — n+1 samples (n even), error O(h⁴), exact for degree ≤ 3
//   - Midpoint    — n samples at subinterval centres, error O(h²)
//   - Gaussian    — 3 or 4 Legendre nodes, exact for degree ≤ 2n-1
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quadra/quadrature"
//
//	f := func(x float64) float64 { return math.Exp(x) * math.Sin(4*x) }
//
//	s := quadrature.Simpson(f, 1, 2, 10)
//	g, err := quadrature.Gauss(f, 1, 2, 4)
//	v, err := quadrature.Integrate(quadrature.Midpoint, f, 1, 2, 10)
//
// Policies:
//
//   - Simpson needs an even subdivision count: an odd n is silently
//     raised to n+1 (Simpson(f,a,b,5) == Simpson(f,a,b,6)).
//   - Bounds are never validated; a ≥ b yields a signed or zero result.
//   - NaN/Inf produced by f propagates unchanged into the result.
//   - n ≤ 0 is a caller error; the result is then NaN or ±Inf.
//   - Gaussian supports exactly n ∈ {3,4}; anything else is
//     ErrUnsupportedOrder.
//
// Performance:
//
//   - Time:   O(n) integrand evaluations
//   - Memory: O(1) (no sample buffers are allocated)
//
// All functions are pure: calling any rule twice with identical
// arguments returns bit-identical results, and calls may run in
// parallel from separate goroutines.
package quadrature
