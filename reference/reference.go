package reference

import (
	"math"

	"github.com/katalvlaran/quadra/quadrature"
	"gonum.org/v1/gonum/integrate/quad"
)

// Comparison is an approximation measured against a reference value.
type Comparison struct {
	Approx   float64 // value under test
	Exact    float64 // reference value
	AbsError float64 // |Approx − Exact|
	RelError float64 // AbsError/|Exact|; +Inf if Exact == 0 and AbsError > 0
}

// Integral returns a high-accuracy value of ∫_a^b f(x) dx using a
// Gauss–Legendre rule with DefaultNodes points (see WithNodes).
//
// Reversed bounds give the negated integral. Infinite bounds are
// accepted; gonum maps them onto a finite interval before sampling.
func Integral(f quadrature.Func, a, b float64, opts ...Option) float64 {
	if a > b {
		return -Integral(f, b, a, opts...)
	}
	o := gatherOptions(opts...)

	// nil rule: Legendre, with the infinite-bound transform when needed.
	return quad.Fixed(f, a, b, o.nodes, nil, o.concurrency)
}

// Compare builds the Comparison row for approx against exact.
func Compare(approx, exact float64) Comparison {
	abs := math.Abs(approx - exact)
	var rel float64
	switch {
	case exact != 0:
		rel = abs / math.Abs(exact)
	case abs > 0:
		rel = math.Inf(1)
	}

	return Comparison{Approx: approx, Exact: exact, AbsError: abs, RelError: rel}
}
