package improper_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/improper"
)

// ExampleAlgebraic integrates sin x·x^(−1/4) over [0,1], where the
// integrand is unbounded at 0.
func ExampleAlgebraic() {
	v, err := improper.Algebraic(math.Sin, 0, 1, 0.25, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.8f\n", v)
	// Output:
	// 0.52840848
}

// ExampleLogarithmic integrates sin x / x over [1,4] through x = eᵗ.
func ExampleLogarithmic() {
	v, err := improper.Logarithmic(math.Sin, 1, 4, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.8f\n", v)
	// Output:
	// 0.81212008
}
