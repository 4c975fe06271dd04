package cubature_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/cubature"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSimpson
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	∫_0^{π/4} ∫_{sin x}^{cos x} 2y·sin x·cos x dy dx = 1/8
//
// The inner integrand is linear in y, so each inner rule is exact and the
// remaining error comes from the outer direction only.
func ExampleSimpson() {
	f := func(x, y float64) float64 { return 2 * y * math.Sin(x) * math.Cos(x) }

	s := cubature.Simpson(f, math.Sin, math.Cos, 0, math.Pi/4, 4, 4)
	g, _ := cubature.Gauss(f, math.Sin, math.Cos, 0, math.Pi/4, 3, 3)
	fmt.Printf("simpson(4,4) %.10f\n", s)
	fmt.Printf("gauss(3,3)   %.10f\n", g)
	// Output:
	// simpson(4,4) 0.1252849847
	// gauss(3,3)   0.1250868071
}
