package cubature

import "github.com/katalvlaran/quadra/quadrature"

// Simpson approximates ∫_a^b ∫_{g1(x)}^{g2(x)} f(x,y) dy dx by nesting
// the composite Simpson rule.
//
// Algorithm:
//  1. n ← even(n), m ← even(m); h = (b-a)/n.
//  2. For each xᵢ = a + i·h, with Simpson coefficient cᵢ ∈ {1,4,2,…,4,1}:
//     kᵢ = (g2(xᵢ) − g1(xᵢ))/m and
//     Iᵢ = kᵢ/3 · Σⱼ cⱼ f(xᵢ, g1(xᵢ) + j·kᵢ).
//  3. Return h/3 · Σᵢ cᵢ Iᵢ.
//
// Exact when f is a polynomial of degree ≤ 3 in each variable and the
// bounds are constant. Bounds are not validated; g1 > g2 flips the sign
// of the inner integral.
func Simpson(f Func2, g1, g2 Bound, a, b float64, n, m int) float64 {
	n = quadrature.EvenCount(n)
	m = quadrature.EvenCount(m)
	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i <= n; i++ {
		x := a + float64(i)*h
		if i == n {
			x = b
		}
		lo, hi := g1(x), g2(x)
		inner := quadrature.Simpson(func(y float64) float64 { return f(x, y) }, lo, hi, m)
		sum += simpsonCoef(i, n) * inner
	}

	return h / 3 * sum
}

// simpsonCoef is the composite Simpson weight of node i out of n:
// 1 at both ends, 4 at odd nodes, 2 at interior even nodes.
func simpsonCoef(i, n int) float64 {
	switch {
	case i == 0 || i == n:
		return 1
	case i%2 == 1:
		return 4
	default:
		return 2
	}
}
