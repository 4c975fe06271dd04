package main

import (
	"github.com/katalvlaran/quadra/problems"
	"github.com/katalvlaran/quadra/quadrature"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type integrateOpts struct {
	integrand string
	rule      string
	a, b      float64
	n         int
	exact     float64
}

func newIntegrateCommand(root *rootOpts) *cobra.Command {
	opts := integrateOpts{}

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate one catalog function over [a,b] with a single rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := quadrature.ParseRule(opts.rule)
			if err != nil {
				return err
			}
			p := problems.Problem{
				Name:      opts.integrand + "/" + rule.String(),
				Kind:      problems.KindDefinite,
				Integrand: opts.integrand,
				Rule:      rule,
				A:         opts.a,
				B:         opts.b,
				N:         opts.n,
			}
			if cmd.Flags().Changed("exact") {
				exact := opts.exact
				p.Exact = &exact
			}

			logrus.WithFields(logrus.Fields{
				"integrand": p.Integrand,
				"rule":      rule,
				"a":         p.A,
				"b":         p.B,
				"n":         p.N,
			}).Debug("integrating")
			res, err := problems.Evaluate(p)
			if err != nil {
				return err
			}

			return printResults(cmd.OutOrStdout(), []problems.Result{res}, root.precision)
		},
	}
	cmd.Flags().StringVar(&opts.integrand, "func", "exp_sin4x", "integrand name (see 'quadra list')")
	cmd.Flags().StringVar(&opts.rule, "rule", "simpson", "trapezoidal, simpson, midpoint or gaussian")
	cmd.Flags().Float64Var(&opts.a, "a", 1, "lower bound")
	cmd.Flags().Float64Var(&opts.b, "b", 2, "upper bound")
	cmd.Flags().IntVar(&opts.n, "n", 10, "subintervals (composite rules) or points (gaussian)")
	cmd.Flags().Float64Var(&opts.exact, "exact", 0, "exact value to compare against (default: computed reference)")

	return cmd
}
