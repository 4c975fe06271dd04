// Package reference produces high-accuracy integral values to measure
// the error of the cheap fixed rules in packages quadrature, cubature and
// improper, and packages the comparison into a Comparison row.
//
// Reference values come from a high-order Gauss–Legendre rule
// (gonum.org/v1/gonum/integrate/quad, DefaultNodes points). Legendre nodes
// never touch the interval ends, so integrands with an integrable endpoint
// singularity such as sin x·x^(−1/4) on [0,1] still yield a usable value.
//
// ⚙️ Usage:
//
//	exact := reference.Integral(f, 1, 2)
//	row := reference.Compare(quadrature.Simpson(f, 1, 2, 10), exact)
//	fmt.Println(row.AbsError, row.RelError)
package reference
