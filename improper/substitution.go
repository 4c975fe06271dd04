package improper

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/quadrature"
)

// Algebraic approximates ∫_a^b g(x)·(x−a)^(−p) dx for 0 ≤ p < 1.
//
// With t = (x−a)^(1−p) the factor (x−a)^(−p)·dx becomes dt/(1−p), so the
// transformed integrand g(a + t^{1/(1−p)})/(1−p) is finite at t = 0. It is
// integrated over [0, (b−a)^(1−p)] with n Simpson subintervals (odd n is
// raised to n+1).
//
// Errors:
//   - ErrExponentRange — p < 0, p ≥ 1 or p is NaN.
func Algebraic(g quadrature.Func, a, b, p float64, n int) (float64, error) {
	if !(p >= 0 && p < 1) {
		return 0, fmt.Errorf("%w: p=%g", ErrExponentRange, p)
	}

	q := 1 - p
	inv := 1 / q
	h := func(t float64) float64 {
		return g(a+math.Pow(t, inv)) * inv
	}

	return quadrature.Simpson(h, 0, math.Pow(b-a, q), n), nil
}

// Logarithmic approximates ∫_a^b g(x)/x dx for 0 < a.
//
// With x = eᵗ the factor dx/x becomes dt, leaving ∫_{ln a}^{ln b} g(eᵗ) dt,
// integrated with n Simpson subintervals.
//
// Errors:
//   - ErrNonPositiveBound — a ≤ 0.
func Logarithmic(g quadrature.Func, a, b float64, n int) (float64, error) {
	if !(a > 0) {
		return 0, fmt.Errorf("%w: a=%g", ErrNonPositiveBound, a)
	}
	h := func(t float64) float64 { return g(math.Exp(t)) }

	return quadrature.Simpson(h, math.Log(a), math.Log(b), n), nil
}
