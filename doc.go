// Package quadra is a compact toolkit for numerical integration with the
// classical rules taught in every numerical-analysis course, plus the
// plumbing to measure how well they do.
//
// 🚀 What is in quadra?
//
//	• quadrature/ — 1D composite trapezoid, Simpson, midpoint and
//	                Gauss–Legendre (3 and 4 points)
//	• cubature/   — double integrals over curve-bounded regions
//	                (nested Simpson, tensor Gauss–Legendre)
//	• improper/   — algebraic and logarithmic substitutions for
//	                endpoint-singular integrals
//	• reference/  — high-order reference values and error rows
//	• problems/   — integrand catalog, YAML problem sets, homework set
//	• cmd/quadra  — command-line front-end
//
// ✨ Why quadra?
//
//   - Pure functions – no hidden state, bit-identical repeats
//   - Documented policies – odd n for Simpson is raised to n+1, bounds are
//     never validated, non-finite integrand values propagate
//   - Extensible Gauss table – add a node/weight row, callers unchanged
//
// Quick example:
//
//	f := func(x float64) float64 { return math.Exp(x) * math.Sin(4*x) }
//	v, err := quadrature.Integrate(quadrature.RuleSimpson, f, 1, 2, 10)
//
//	go get github.com/katalvlaran/quadra
package quadra
