package quadrature

import "fmt"

// Integrate approximates ∫_a^b f(x) dx with the chosen rule.
//
// For the composite rules n is the subdivision count; for RuleGaussian it
// is the number of Legendre points. The result of Integrate(r, ...) is
// bit-identical to calling the matching function directly.
//
// Errors:
//   - ErrUnsupportedOrder — RuleGaussian with n ∉ {3,4}.
//   - ErrUnknownRule      — r is not one of the declared rules.
//
// Example:
//
//	v, err := Integrate(RuleSimpson, math.Sin, 0, math.Pi, 10)
func Integrate(r Rule, f Func, a, b float64, n int) (float64, error) {
	switch r {
	case RuleTrapezoidal:
		return Trapezoidal(f, a, b, n), nil
	case RuleSimpson:
		return Simpson(f, a, b, n), nil
	case RuleMidpoint:
		return Midpoint(f, a, b, n), nil
	case RuleGaussian:
		return Gauss(f, a, b, n)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownRule, int(r))
	}
}
