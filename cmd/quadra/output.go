package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/quadra/problems"
)

// printResults writes one aligned row per result.
func printResults(w io.Writer, results []problems.Result, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROBLEM\tRULE\tAPPROX\tEXACT\tABS ERROR\tREL ERROR")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%.*f\t%.*f\t%.3e\t%.3e\n",
			r.Problem.Name, ruleLabel(r.Problem),
			precision, r.Approx, precision, r.Exact,
			r.AbsError, r.RelError)
	}

	return tw.Flush()
}

// ruleLabel names the method actually applied to p.
func ruleLabel(p problems.Problem) string {
	switch p.Kind {
	case problems.KindAlgebraic:
		return fmt.Sprintf("simpson/t=(x-a)^%g", 1-p.Exponent)
	case problems.KindLogarithmic:
		return "simpson/x=e^t"
	case problems.KindDouble:
		return fmt.Sprintf("%s %dx%d", p.Rule, p.N, p.M)
	default:
		return fmt.Sprintf("%s n=%d", p.Rule, p.N)
	}
}
