// Package improper evaluates integrals with an integrable endpoint
// singularity by a change of variable that removes it, then applies the
// composite Simpson rule from package quadrature to the smooth result.
//
// Substitutions:
//
//	Algebraic    ∫_a^b g(x)·(x−a)^(−p) dx, 0 ≤ p < 1
//	             t = (x−a)^(1−p)  ⇒  ∫_0^{(b−a)^(1−p)} g(a + t^{1/(1−p)}) / (1−p) dt
//
//	Logarithmic  ∫_a^b g(x)/x dx, 0 < a
//	             x = eᵗ           ⇒  ∫_{ln a}^{ln b} g(eᵗ) dt
//
// Both transforms keep the caller's g free of the singular factor: pass
// g(x) = sin x for ∫_0^1 sin x·x^(−1/4) dx, not sin x·x^(−1/4).
//
// Errors:
//   - ErrExponentRange    — p outside [0, 1).
//   - ErrNonPositiveBound — a ≤ 0 for the logarithmic map.
package improper
