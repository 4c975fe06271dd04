// Package cubature approximates iterated double integrals over regions
// bounded by curves in y:
//
//	∫_a^b ∫_{g1(x)}^{g2(x)} f(x, y) dy dx
//
// ✨ Rules:
//   - Simpson — composite Simpson 1/3 in x (n subintervals) and, at every
//     x node, composite Simpson in y (m subintervals). Odd n or m are
//     raised to the next even number, as in quadrature.Simpson.
//   - Gauss   — tensor Gauss–Legendre with n points in x and m points in
//     y, the inner nodes re-mapped to [g1(xᵢ), g2(xᵢ)] at every xᵢ.
//     Orders follow quadrature.GaussNodes (n, m ∈ {3,4}).
//
// ⚙️ Usage:
//
//	f := func(x, y float64) float64 { return 2 * y * math.Sin(x) * math.Cos(x) }
//	v := cubature.Simpson(f, math.Sin, math.Cos, 0, math.Pi/4, 4, 4)
//	g, err := cubature.Gauss(f, math.Sin, math.Cos, 0, math.Pi/4, 3, 3)
//
// Performance:
//
//   - Time:   O(n·m) evaluations of f plus O(n) evaluations of g1, g2
//   - Memory: O(m) for Gauss, O(1) for Simpson
package cubature
