package reference_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/quadrature"
	"github.com/katalvlaran/quadra/reference"
)

// ExampleCompare measures Simpson's rule against the reference value of
// ∫_0^π sin x dx.
func ExampleCompare() {
	exact := reference.Integral(math.Sin, 0, math.Pi)
	row := reference.Compare(quadrature.Simpson(math.Sin, 0, math.Pi, 10), exact)
	fmt.Printf("approx=%.6f exact=%.6f abs=%.2e\n", row.Approx, row.Exact, row.AbsError)
	// Output:
	// approx=2.000110 exact=2.000000 abs=1.10e-04
}
