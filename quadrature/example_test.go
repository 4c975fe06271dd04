package quadrature_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/quadrature"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleIntegrate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	∫_1^2 e^x·sin(4x) dx with h = 0.1 (n = 10) under the three composite
//	rules, next to the closed-form value e^x(sin 4x − 4 cos 4x)/17.
//
// Effect:
//
//	Simpson (O(h⁴)) lands within 3e-4; trapezoid and midpoint (O(h²))
//	bracket the exact value from opposite sides.
func ExampleIntegrate() {
	f := func(x float64) float64 { return math.Exp(x) * math.Sin(4*x) }
	F := func(x float64) float64 { return math.Exp(x) * (math.Sin(4*x) - 4*math.Cos(4*x)) / 17 }

	for _, r := range []quadrature.Rule{quadrature.RuleTrapezoidal, quadrature.RuleSimpson, quadrature.RuleMidpoint} {
		v, err := quadrature.Integrate(r, f, 1, 2, 10)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%-11s %.10f\n", r, v)
	}
	fmt.Printf("%-11s %.10f\n", "exact", F(2)-F(1))
	// Output:
	// trapezoidal 0.3961475922
	// simpson     0.3856635960
	// midpoint    0.3808047984
	// exact       0.3859357293
}

// ExampleGauss shows the two supported orders and the rejection of others.
func ExampleGauss() {
	f := func(x float64) float64 { return x * math.Log(x) }

	g3, _ := quadrature.Gauss(f, 1, 1.5, 3)
	g4, _ := quadrature.Gauss(f, 1, 1.5, 4)
	fmt.Printf("n=3 %.10f\nn=4 %.10f\n", g3, g4)

	_, err := quadrature.Gauss(f, 1, 1.5, 5)
	fmt.Println(errors.Is(err, quadrature.ErrUnsupportedOrder))
	// Output:
	// n=3 0.1436482150
	// n=4 0.1436482464
	// true
}

// ExampleSimpson integrates sin over [0,π] (exact value 2).
func ExampleSimpson() {
	fmt.Printf("%.6f\n", quadrature.Simpson(math.Sin, 0, math.Pi, 10))
	fmt.Printf("%.6f\n", quadrature.Trapezoidal(math.Sin, 0, math.Pi, 10))
	fmt.Printf("%.6f\n", quadrature.Midpoint(math.Sin, 0, math.Pi, 10))
	// Output:
	// 2.000110
	// 1.983524
	// 2.008248
}
