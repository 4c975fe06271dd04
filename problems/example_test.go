package problems_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quadra/problems"
)

// ExampleEvaluate loads a one-problem set and reports the error row.
func ExampleEvaluate() {
	doc := `
problems:
  - name: x-ln-x
    integrand: x_ln_x
    rule: gaussian
    a: 1
    b: 1.5
    n: 4
`
	set, err := problems.LoadSet(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := problems.Evaluate(set[0])
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s approx=%.10f exact=%.10f\n", res.Problem.Name, res.Approx, res.Exact)
	// Output:
	// x-ln-x approx=0.1436482464 exact=0.1436482466
}
