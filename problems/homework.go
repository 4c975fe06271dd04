package problems

import (
	"math"

	"github.com/katalvlaran/quadra/quadrature"
)

// Homework returns the classic four-part exercise set:
//
//  1. ∫_1^2 e^x·sin 4x dx, h = 0.1, by trapezoidal, Simpson and midpoint rules.
//  2. ∫_1^{1.5} x·ln x dx by 3- and 4-point Gauss–Legendre.
//  3. ∫_0^{π/4} ∫_{sin x}^{cos x} 2y·sin x·cos x dy dx by Simpson (n=m=4)
//     and Gauss–Legendre (n=m=3); exact value 1/8.
//  4. ∫_0^1 sin x·x^(−1/4) dx and ∫_1^4 sin x / x dx by substitution and
//     Simpson with n = 4.
//
// Exact values are attached where a closed form exists; the improper
// integrals are measured against reference.Integral.
func Homework() []Problem {
	expSin4 := func(x float64) float64 { return math.Exp(x) * (math.Sin(4*x) - 4*math.Cos(4*x)) / 17 }
	xLnX := func(x float64) float64 { return x*x/2*math.Log(x) - x*x/4 }
	q1 := expSin4(2) - expSin4(1)
	q2 := xLnX(1.5) - xLnX(1)
	q3 := 0.125

	return []Problem{
		{Name: "q1a-trapezoidal", Kind: KindDefinite, Integrand: "exp_sin4x", Rule: quadrature.RuleTrapezoidal, A: 1, B: 2, N: 10, Exact: &q1},
		{Name: "q1b-simpson", Kind: KindDefinite, Integrand: "exp_sin4x", Rule: quadrature.RuleSimpson, A: 1, B: 2, N: 10, Exact: &q1},
		{Name: "q1c-midpoint", Kind: KindDefinite, Integrand: "exp_sin4x", Rule: quadrature.RuleMidpoint, A: 1, B: 2, N: 10, Exact: &q1},
		{Name: "q2-gauss-3", Kind: KindDefinite, Integrand: "x_ln_x", Rule: quadrature.RuleGaussian, A: 1, B: 1.5, N: 3, Exact: &q2},
		{Name: "q2-gauss-4", Kind: KindDefinite, Integrand: "x_ln_x", Rule: quadrature.RuleGaussian, A: 1, B: 1.5, N: 4, Exact: &q2},
		{Name: "q3a-simpson-2d", Kind: KindDouble, Integrand: "2y_sinx_cosx", Rule: quadrature.RuleSimpson, Lower: "sin", Upper: "cos", A: 0, B: math.Pi / 4, N: 4, M: 4, Exact: &q3},
		{Name: "q3b-gauss-2d", Kind: KindDouble, Integrand: "2y_sinx_cosx", Rule: quadrature.RuleGaussian, Lower: "sin", Upper: "cos", A: 0, B: math.Pi / 4, N: 3, M: 3, Exact: &q3},
		{Name: "q4a-algebraic", Kind: KindAlgebraic, Integrand: "sin", Rule: quadrature.RuleSimpson, A: 0, B: 1, N: 4, Exponent: 0.25},
		{Name: "q4b-logarithmic", Kind: KindLogarithmic, Integrand: "sin", Rule: quadrature.RuleSimpson, A: 1, B: 4, N: 4},
	}
}
